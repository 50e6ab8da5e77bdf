package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/invorya/stockroom-api/internal/application/dto"
	"github.com/invorya/stockroom-api/internal/application/usecase"
	"github.com/invorya/stockroom-api/internal/domain/entity"
)

// ItemHandler maneja las peticiones HTTP para Item (protegido).
type ItemHandler struct {
	uc *usecase.ItemUseCase
}

// NewItemHandler construye el handler.
func NewItemHandler(uc *usecase.ItemUseCase) *ItemHandler {
	return &ItemHandler{uc: uc}
}

// List godoc
// @Summary      Listar artículos
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ItemListResponse
// @Router       /api/items [get]
func (h *ItemHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "paginación inválida"})
	}
	out, err := h.uc.List(page)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// GetBySlug godoc
// @Summary      Obtener artículo por slug
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Param        slug  path  string  true  "Slug del artículo"
// @Success      200   {object}  dto.ItemResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/items/{slug} [get]
func (h *ItemHandler) GetBySlug(c *fiber.Ctx) error {
	out, err := h.uc.GetBySlug(c.Params("slug"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear artículo (slug y precios de venta derivados)
// @Tags         items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateItemRequest  true  "Datos del artículo"
// @Success      201   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/items [post]
func (h *ItemHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar artículo (parcial; derivados recalculados)
// @Tags         items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        slug  path  string  true  "Slug actual"
// @Param        body  body  dto.UpdateItemRequest  true  "campos a cambiar"
// @Success      200   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/items/{slug} [patch]
func (h *ItemHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("slug"), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// AddPhotos godoc
// @Summary      Subir fotos (multipart, máximo 5 por artículo)
// @Tags         items
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        slug    path      string  true  "Slug del artículo"
// @Param        photos  formData  file    true  "archivos de imagen"
// @Success      200     {object}  dto.ItemResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /api/items/{slug}/photos [post]
func (h *ItemHandler) AddPhotos(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "se esperaba multipart/form-data"})
	}
	files := form.File["photos"]
	if len(files) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "se requiere al menos un archivo en el campo photos"})
	}
	if len(files) > entity.MaxPhotos {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "máximo 5 fotos por petición"})
	}

	uploads := make([]usecase.PhotoUpload, 0, len(files))
	closers := make([]func() error, 0, len(files))
	defer func() {
		for _, cl := range closers {
			_ = cl()
		}
	}()
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			return respondDomainError(c, err)
		}
		closers = append(closers, f.Close)
		uploads = append(uploads, usecase.PhotoUpload{Filename: fh.Filename, Reader: f})
	}

	out, err := h.uc.AddPhotos(c.Context(), c.Params("slug"), uploads)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar artículo
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Param        slug  path  string  true  "Slug del artículo"
// @Success      200   {object}  dto.MessageResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/items/{slug} [delete]
func (h *ItemHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("slug")); err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "artículo eliminado"})
}
