// internal/application/usecase/docmap.go
package usecase

import (
	"fmt"
	"strings"
	"time"

	"google.golang.org/genproto/googleapis/type/latlng"

	orderdom "fencecalendar/internal/domain/order"
)

// ========================
// Decode helpers (Firestore type wobble absorption)
// ========================

func asMapAny(v any) map[string]any {
	if v == nil {
		return nil
	}
	if m, ok := v.(map[string]any); ok {
		return m
	}
	if m, ok := v.(map[string]interface{}); ok {
		return m
	}
	return nil
}

func mapGetStr(m map[string]any, key string) string {
	if m == nil {
		return ""
	}
	v, ok := m[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// mapGetStrPtr keeps the stored null / missing distinction (phone, url).
func mapGetStrPtr(m map[string]any, key string) *string {
	if m == nil {
		return nil
	}
	v, ok := m[key]
	if !ok || v == nil {
		return nil
	}
	if s, ok := v.(string); ok {
		return &s
	}
	s := fmt.Sprint(v)
	return &s
}

func mapGetInt(m map[string]any, key string) int {
	if m == nil {
		return 0
	}
	v, ok := m[key]
	if !ok || v == nil {
		return 0
	}
	switch t := v.(type) {
	case int:
		return t
	case int64:
		return int(t)
	case float64:
		return int(t)
	default:
		return 0
	}
}

func mapGetBool(m map[string]any, key string) bool {
	if m == nil {
		return false
	}
	v, ok := m[key]
	if !ok || v == nil {
		return false
	}
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return strings.TrimSpace(strings.ToLower(t)) == "true"
	default:
		return false
	}
}

func mapGetStrSlice(m map[string]any, key string) []string {
	if m == nil {
		return nil
	}
	switch t := m[key].(type) {
	case []string:
		return t
	case []any:
		out := make([]string, 0, len(t))
		for _, e := range t {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

func mapGetTimePtr(m map[string]any, key string) *time.Time {
	if m == nil {
		return nil
	}
	switch t := m[key].(type) {
	case time.Time:
		return &t
	case *time.Time:
		return t
	default:
		return nil
	}
}

func mapGetFences(m map[string]any, key string) []orderdom.Fence {
	if m == nil {
		return nil
	}
	raw, ok := m[key].([]any)
	if !ok {
		// memory store round-trips []map[string]any unchanged
		if ms, ok2 := m[key].([]map[string]any); ok2 {
			raw = make([]any, len(ms))
			for i, e := range ms {
				raw[i] = e
			}
		} else {
			return nil
		}
	}
	out := make([]orderdom.Fence, 0, len(raw))
	for _, e := range raw {
		fm := asMapAny(e)
		if fm == nil {
			continue
		}
		out = append(out, orderdom.Fence{
			FenceType: mapGetStr(fm, "fence_type"),
			NoOfUnits: mapGetInt(fm, "no_of_units"),
		})
	}
	return out
}

func mapGetGeo(m map[string]any, key string) *orderdom.GeoPoint {
	if m == nil {
		return nil
	}
	switch t := m[key].(type) {
	case *latlng.LatLng:
		if t == nil {
			return nil
		}
		return &orderdom.GeoPoint{Latitude: t.GetLatitude(), Longitude: t.GetLongitude()}
	default:
		gm := asMapAny(m[key])
		if gm == nil {
			return nil
		}
		return &orderdom.GeoPoint{
			Latitude:  mapGetFloat(gm, "latitude"),
			Longitude: mapGetFloat(gm, "longitude"),
		}
	}
}

func mapGetFloat(m map[string]any, key string) float64 {
	if m == nil {
		return 0
	}
	switch t := m[key].(type) {
	case float64:
		return t
	case float32:
		return float64(t)
	case int:
		return float64(t)
	case int64:
		return float64(t)
	default:
		return 0
	}
}
