package handlers

import (
	"net/http"

	"jewelry_store/internal/services"

	"github.com/gin-gonic/gin"
)

type JewelryHandler struct {
	jewelryService services.JewelryService
}

func NewJewelryHandler(jewelryService services.JewelryService) *JewelryHandler {
	return &JewelryHandler{jewelryService: jewelryService}
}

func (h *JewelryHandler) Create(c *gin.Context) {
	var input services.JewelryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	jewelry, err := h.jewelryService.CreateJewelry(input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, jewelry)
}

func (h *JewelryHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	jewelry, err := h.jewelryService.GetJewelryByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, jewelry)
}

func (h *JewelryHandler) GetAll(c *gin.Context) {
	items, err := h.jewelryService.GetAllJewelry()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *JewelryHandler) GetByType(c *gin.Context) {
	items, err := h.jewelryService.GetJewelryByType(c.Param("type"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *JewelryHandler) GetByCategory(c *gin.Context) {
	items, err := h.jewelryService.GetJewelryByCategory(c.Param("category"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *JewelryHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input services.JewelryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	jewelry, err := h.jewelryService.UpdateJewelry(id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, jewelry)
}

func (h *JewelryHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.jewelryService.DeleteJewelry(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
