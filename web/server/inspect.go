package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit           bool                   `json:"hit"`
	ElementIndex  int                    `json:"elementIndex"`
	MaterialType  string                 `json:"materialType"`
	GeometryType  string                 `json:"geometryType"`
	Point         [3]float64             `json:"point"`
	Normal        [3]float64             `json:"normal"`
	Distance      float64                `json:"distance"`
	TextureCoords [2]float32             `json:"textureCoords"`
	Properties    map[string]interface{} `json:"properties"`
}

// extractMaterialInfo extracts detailed material information with type assertions
func (s *Server) extractMaterialInfo(mat material.Material) (string, map[string]interface{}) {
	properties := map[string]interface{}{
		"color":  colorHex(mat.Color),
		"albedo": mat.Albedo,
	}

	switch surface := mat.Surface.(type) {
	case material.Reflective:
		properties["reflectivity"] = surface.Reflectivity
	case material.Refractive:
		properties["index"] = surface.Index
		properties["transparency"] = surface.Transparency
	}

	return string(mat.Surface.Type()), properties
}

// extractGeometryInfo extracts detailed geometry information
func (s *Server) extractGeometryInfo(element geometry.Element) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch geom := element.(type) {
	case *geometry.Sphere:
		properties["center"] = [3]float64{geom.Center.X, geom.Center.Y, geom.Center.Z}
		properties["radius"] = geom.Radius
		return "sphere", properties

	case *geometry.Plane:
		properties["origin"] = [3]float64{geom.Origin.X, geom.Origin.Y, geom.Origin.Z}
		properties["normal"] = [3]float64{geom.Normal.X, geom.Normal.Y, geom.Normal.Z}
		return "plane", properties

	default:
		return "unknown", properties
	}
}

// inspectPixel casts the primary ray through a pixel center and describes the
// nearest element it hits
func (s *Server) inspectPixel(sceneObj *scene.Scene, pixelX, pixelY int) InspectResponse {
	ray := renderer.PrimaryRay(pixelX, pixelY, sceneObj)

	hit, isHit := sceneObj.Trace(ray)
	if !isHit {
		return InspectResponse{Hit: false, ElementIndex: -1}
	}

	element := sceneObj.Element(hit)
	point := ray.At(hit.Distance)
	normal := element.SurfaceNormal(point)
	uv := element.TextureCoords(point)

	materialType, materialProps := s.extractMaterialInfo(element.GetMaterial())
	geometryType, geometryProps := s.extractGeometryInfo(element)

	return InspectResponse{
		Hit:           true,
		ElementIndex:  hit.ElementIndex,
		MaterialType:  materialType,
		GeometryType:  geometryType,
		Point:         [3]float64{point.X, point.Y, point.Z},
		Normal:        [3]float64{normal.X, normal.Y, normal.Z},
		Distance:      hit.Distance,
		TextureCoords: [2]float32{uv.X, uv.Y},
		Properties: map[string]interface{}{
			"material": materialProps,
			"geometry": geometryProps,
		},
	}
}

// handleInspect handles ray casting inspection requests
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid scene parameters: "+err.Error())
		return
	}

	sceneObj, err := s.createScene(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	// Parse pixel coordinates
	pixelX, err := strconv.Atoi(r.URL.Query().Get("x"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid x coordinate")
		return
	}

	pixelY, err := strconv.Atoi(r.URL.Query().Get("y"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid y coordinate")
		return
	}

	if pixelX < 0 || pixelX >= sceneObj.Width || pixelY < 0 || pixelY >= sceneObj.Height {
		writeError(w, http.StatusBadRequest, "Pixel coordinates out of bounds")
		return
	}

	writeJSON(w, http.StatusOK, s.inspectPixel(sceneObj, pixelX, pixelY))
}

func colorHex(c core.Color) string {
	c = c.Clamp()
	return fmt.Sprintf("#%02x%02x%02x", int(c.Red*255), int(c.Green*255), int(c.Blue*255))
}
