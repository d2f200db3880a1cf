package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"trip-log-service/internal/api/dto"
	"trip-log-service/internal/domain"
)

type placeLister interface {
	Places() []domain.Place
}

type CityHandler struct {
	places placeLister
}

func NewCityHandler(places placeLister) *CityHandler {
	return &CityHandler{places: places}
}

func (h *CityHandler) Register(r *gin.RouterGroup) {
	r.GET("/cities/", h.List)
}

// List returns every known city, sorted by name.
func (h *CityHandler) List(c *gin.Context) {
	places := h.places.Places()

	res := make([]dto.CityResponse, 0, len(places))
	for _, p := range places {
		res = append(res, dto.CityResponse{Name: p.Name, Lat: p.Coords.Lat, Lng: p.Coords.Lon})
	}

	c.JSON(http.StatusOK, res)
}
