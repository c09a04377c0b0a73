// internal/platform/di/container.go
package di

import (
	"context"
	"fmt"
	"log"

	firebase "firebase.google.com/go/v4"
	firebaseauth "firebase.google.com/go/v4/auth"

	httpin "fencecalendar/internal/adapters/in/http"
	"fencecalendar/internal/adapters/in/http/middleware"
	fs "fencecalendar/internal/adapters/out/firestore"
	uc "fencecalendar/internal/application/usecase"
	appcfg "fencecalendar/internal/infra/config"
	fsinfra "fencecalendar/internal/infra/firestore"
	"fencecalendar/internal/infra/secrets"
)

// ========================================
// Container (Firestore + Firebase edition)
// ========================================
type Container struct {
	// Infra
	Config       *appcfg.Config
	Firestore    *fsinfra.ClientWrapper
	FirebaseApp  *firebase.App
	FirebaseAuth *firebaseauth.Client

	// Application-layer usecases
	BranchUC       *uc.BranchUsecase
	OrderUC        *uc.OrderUsecase
	CalendarViewUC *uc.CalendarViewUsecase
	PlaceholderUC  *uc.PlaceholderUsecase

	cleanupFn []func()
}

// NewContainer は main.go から使う依存オブジェクトの束を組み立てる。
func NewContainer(ctx context.Context) (*Container, error) {
	cfg := appcfg.Load()
	c := &Container{Config: cfg}

	// ------------------------------------------------------------
	// Firestore credentials: Secret Manager → key file → ADC
	// ------------------------------------------------------------
	var credsJSON []byte
	if cfg.FirestoreCredentialsSecret != "" {
		provider, err := secrets.NewProvider(ctx, cfg.FirestoreProjectID)
		if err != nil {
			return nil, fmt.Errorf("di: secret manager init failed: %w", err)
		}
		c.cleanupFn = append(c.cleanupFn, func() { _ = provider.Close() })

		credsJSON, err = provider.Access(ctx, cfg.FirestoreCredentialsSecret, "latest")
		if err != nil {
			return nil, fmt.Errorf("di: credentials secret fetch failed: %w", err)
		}
		log.Printf("[di] firestore credentials loaded from secret %q", cfg.FirestoreCredentialsSecret)
	}

	// ------------------------------------------------------------
	// Firestore
	// ------------------------------------------------------------
	fsw, err := fsinfra.NewClient(ctx, cfg.FirestoreProjectID, cfg.FirestoreCredentialsFile, credsJSON)
	if err != nil {
		return nil, err
	}
	c.Firestore = fsw
	c.cleanupFn = append(c.cleanupFn, func() { _ = fsw.Close() })

	// ------------------------------------------------------------
	// Firebase Auth (bearer token verification)
	// ------------------------------------------------------------
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.FirebaseProjectID})
	if err != nil {
		return nil, fmt.Errorf("di: firebase app init failed: %w", err)
	}
	c.FirebaseApp = app

	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("di: firebase auth init failed: %w", err)
	}
	c.FirebaseAuth = authClient

	// ------------------------------------------------------------
	// Store gateway + usecases
	// ------------------------------------------------------------
	store := fs.NewStoreFS(fsw.Client)

	c.BranchUC = uc.NewBranchUsecase(store)
	c.OrderUC = uc.NewOrderUsecase(store)
	c.CalendarViewUC = uc.NewCalendarViewUsecase(store, c.OrderUC)
	c.PlaceholderUC = uc.NewPlaceholderUsecase(store)

	return c, nil
}

// RouterDeps は HTTP ルーターに渡す依存の束を返す。
func (c *Container) RouterDeps() httpin.RouterDeps {
	return httpin.RouterDeps{
		BranchUC:       c.BranchUC,
		OrderUC:        c.OrderUC,
		CalendarViewUC: c.CalendarViewUC,
		PlaceholderUC:  c.PlaceholderUC,
		Auth:           &middleware.AuthMiddleware{FirebaseAuth: c.FirebaseAuth},
	}
}

// Close は Cloud Run 終了時などに呼んで安全にリソースを閉じる。
func (c *Container) Close() {
	for _, fn := range c.cleanupFn {
		fn()
	}
}
