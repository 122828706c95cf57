package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/opencampus/roomfinder/internal/api/http/converter"
	"github.com/opencampus/roomfinder/internal/repository"
	"github.com/opencampus/roomfinder/internal/service"
)

type CatalogController struct {
	catalog service.CatalogInteractor
}

func NewCatalogController(catalog service.CatalogInteractor) *CatalogController {
	return &CatalogController{catalog: catalog}
}

func (c *CatalogController) ListRooms(ctx *gin.Context) {
	filter := repository.RoomFilter{College: ctx.Query("college")}
	if building := ctx.Query("building"); building != "" {
		filter.Buildings = []string{building}
	}

	rooms, err := c.catalog.Rooms(ctx.Request.Context(), filter)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"rooms": converter.RoomsToApi(rooms)})
}

func (c *CatalogController) ListColleges(ctx *gin.Context) {
	colleges, err := c.catalog.Colleges(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"colleges": colleges})
}

func (c *CatalogController) ListBuildings(ctx *gin.Context) {
	buildings, err := c.catalog.Buildings(ctx.Request.Context(), ctx.Param("college"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"buildings": buildings})
}
