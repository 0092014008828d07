package home

import (
	"github.com/jhoicas/Inmobiliaria-api/internal/application/dto"
	"github.com/jhoicas/Inmobiliaria-api/internal/domain/entity"
)

func toHomeResponse(h *entity.Home, image string) dto.HomeResponse {
	return dto.HomeResponse{
		ID:                h.ID,
		Address:           h.Address,
		NumberOfBedrooms:  h.NumberOfBedrooms,
		NumberOfBathrooms: h.NumberOfBathrooms,
		City:              h.City,
		ListedDate:        h.ListedDate,
		Price:             h.Price,
		LandSize:          h.LandSize,
		PropertyType:      h.PropertyType,
		Image:             image,
	}
}

func toHomeResponses(list []entity.HomeWithImage) []dto.HomeResponse {
	out := make([]dto.HomeResponse, 0, len(list))
	for i := range list {
		out = append(out, toHomeResponse(&list[i].Home, list[i].CoverImage))
	}
	return out
}

func toHomeDetailResponse(d *entity.HomeDetail) *dto.HomeDetailResponse {
	images := make([]dto.ImageResponse, 0, len(d.Images))
	for _, img := range d.Images {
		images = append(images, dto.ImageResponse{URL: img.URL})
	}
	cover := ""
	if len(d.Images) > 0 {
		cover = d.Images[0].URL
	}
	return &dto.HomeDetailResponse{
		HomeResponse: toHomeResponse(&d.Home, cover),
		Images:       images,
		Realtor:      toContactResponse(d.Realtor),
	}
}

func toContactResponse(c entity.Contact) dto.ContactResponse {
	return dto.ContactResponse{Name: c.Name, Email: c.Email, Phone: c.Phone}
}

func toMessageResponse(m *entity.Message) dto.MessageResponse {
	return dto.MessageResponse{
		ID:        m.ID,
		Message:   m.Message,
		HomeID:    m.HomeID,
		BuyerID:   m.BuyerID,
		RealtorID: m.RealtorID,
		CreatedAt: m.CreatedAt,
	}
}
