package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inmobiliaria-api/internal/application/dto"
	"github.com/jhoicas/Inmobiliaria-api/internal/application/home"
)

// HomeHandler maneja las peticiones HTTP de inmuebles y consultas.
type HomeHandler struct {
	uc     *home.HomeUseCase
	sheet  *home.SheetUseCase
	upload *home.ImageUploadUseCase
}

// NewHomeHandler construye el handler.
func NewHomeHandler(uc *home.HomeUseCase, sheet *home.SheetUseCase, upload *home.ImageUploadUseCase) *HomeHandler {
	return &HomeHandler{uc: uc, sheet: sheet, upload: upload}
}

// List godoc
// @Summary      Listar inmuebles
// @Description  Filtros opcionales combinados con AND. Sin resultados responde 404.
// @Tags         homes
// @Produce      json
// @Param        city          query  string  false  "Ciudad exacta"
// @Param        minPrice      query  number  false  "Precio mínimo"
// @Param        maxPrice      query  number  false  "Precio máximo"
// @Param        propertyType  query  string  false  "RESIDENTIAL o CONDO"
// @Success      200  {array}   dto.HomeResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /home [get]
func (h *HomeHandler) List(c *fiber.Ctx) error {
	var q dto.HomeQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	out, err := h.uc.ListHomes(c.UserContext(), q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Detalle de inmueble
// @Tags         homes
// @Produce      json
// @Param        id   path  string  true  "ID del inmueble"
// @Success      200  {object}  dto.HomeDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /home/{id} [get]
func (h *HomeHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetHomeByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Publicar inmueble
// @Tags         homes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateHomeRequest  true  "Datos del inmueble e imágenes"
// @Success      201   {object}  dto.HomeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /home [post]
func (h *HomeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateHomeRequest
	if ok, err := bindJSON(c, &in); !ok {
		return err
	}
	out, err := h.uc.CreateHome(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar inmueble
// @Description  Solo el realtor dueño. Los campos ausentes no cambian.
// @Tags         homes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID del inmueble"
// @Param        body  body  dto.UpdateHomeRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.HomeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /home/{id} [put]
func (h *HomeHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if ok, err := h.requireOwner(c, id); !ok {
		return err
	}
	var in dto.UpdateHomeRequest
	if ok, err := bindJSON(c, &in); !ok {
		return err
	}
	out, err := h.uc.UpdateHome(c.UserContext(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Borrar inmueble
// @Description  Solo el realtor dueño. Devuelve los inmuebles restantes.
// @Tags         homes
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del inmueble"
// @Success      200  {array}   dto.HomeResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /home/{id} [delete]
func (h *HomeHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if ok, err := h.requireOwner(c, id); !ok {
		return err
	}
	out, err := h.uc.DeleteHome(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Inquire godoc
// @Summary      Consultar por un inmueble
// @Description  El mensaje se dirige al realtor dueño del inmueble.
// @Tags         messages
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string              true  "ID del inmueble"
// @Param        body  body  dto.InquireRequest  true  "Mensaje"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /home/inquire/{id} [post]
func (h *HomeHandler) Inquire(c *fiber.Ctx) error {
	var in dto.InquireRequest
	if ok, err := bindJSON(c, &in); !ok {
		return err
	}
	out, err := h.uc.Inquire(c.UserContext(), GetPrincipal(c), c.Params("id"), in.Message)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Messages godoc
// @Summary      Consultas recibidas por un inmueble
// @Description  Solo el realtor dueño. Incluye el contacto de cada comprador.
// @Tags         messages
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del inmueble"
// @Success      200  {array}   dto.MessageResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /home/{id}/messages [get]
func (h *HomeHandler) Messages(c *fiber.Ctx) error {
	id := c.Params("id")
	if ok, err := h.requireOwner(c, id); !ok {
		return err
	}
	out, err := h.uc.ListMessagesByHome(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Sheet godoc
// @Summary      Ficha PDF del inmueble
// @Tags         homes
// @Produce      application/pdf
// @Param        id   path  string  true  "ID del inmueble"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /home/{id}/sheet [get]
func (h *HomeHandler) Sheet(c *fiber.Ctx) error {
	id := c.Params("id")
	pdf, err := h.sheet.ListingSheet(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="inmueble-`+id+`.pdf"`)
	return c.Send(pdf)
}

// UploadURL godoc
// @Summary      URL prefirmada para subir una imagen
// @Description  La URL pública resultante se usa luego en images[].url al publicar el inmueble.
// @Tags         homes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ImageUploadRequest  true  "fileName, contentType"
// @Success      200   {object}  dto.ImageUploadResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /home/images/upload-url [post]
func (h *HomeHandler) UploadURL(c *fiber.Ctx) error {
	var in dto.ImageUploadRequest
	if ok, err := bindJSON(c, &in); !ok {
		return err
	}
	out, err := h.upload.RequestUpload(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// requireOwner verifica que el usuario del guard sea el realtor dueño del inmueble.
func (h *HomeHandler) requireOwner(c *fiber.Ctx, homeID string) (bool, error) {
	realtorID, err := h.uc.GetRealtorByHomeID(c.UserContext(), homeID)
	if err != nil {
		return false, writeError(c, err)
	}
	if realtorID != GetUserID(c) {
		return false, c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "no es el dueño del inmueble"})
	}
	return true, nil
}
