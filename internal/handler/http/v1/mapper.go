package v1

import (
	"github.com/shenikar/safety_map/internal/models"
	"github.com/twpayne/go-geom/encoding/geojson"
)

// mapSlice преобразует слайс моделей в слайс DTO
func mapSlice[M any, R any](items []*M, fn func(*M) *R) []*R {
	responses := make([]*R, len(items))
	for i, item := range items {
		responses[i] = fn(item)
	}
	return responses
}

// DTOToRegistration преобразует DTO регистрации в данные для сервиса
func DTOToRegistration(dto RegisterRequest) models.Registration {
	return models.Registration{
		Name:           dto.Name,
		Email:          dto.Email,
		Password:       dto.Password,
		Area:           dto.Area,
		EmergencyEmail: dto.EmergencyEmail,
		IsVolunteer:    dto.IsVolunteer,
	}
}

func ModelToUserResponse(model *models.User) UserResponse {
	return UserResponse{
		ID:             model.ID,
		Name:           model.Name,
		Email:          model.Email,
		Area:           model.Area,
		EmergencyEmail: model.EmergencyEmail,
		IsVolunteer:    model.IsVolunteer,
		CreatedAt:      model.CreatedAt,
	}
}

// ModelToSafeRouteResponse заворачивает выбранный маршрут в GeoJSON Feature
func ModelToSafeRouteResponse(model *models.SafeRoute) *SafeRouteResponse {
	return &SafeRouteResponse{
		GeoJSON: &geojson.Feature{
			Geometry: model.Geometry,
			Properties: map[string]any{
				"riskScore": model.RiskScore,
				"riskLevel": model.RiskLevel,
			},
		},
		Distance:  model.Distance,
		RiskScore: model.RiskScore,
		RiskLevel: model.RiskLevel,
	}
}

func DTOToReportModel(dto CreateReportRequest) *models.IncidentReport {
	return &models.IncidentReport{
		Message:   dto.Message,
		Area:      dto.Area,
		Latitude:  dto.Latitude,
		Longitude: dto.Longitude,
	}
}

func ModelToReportResponse(model *models.IncidentReport) *ReportResponse {
	return &ReportResponse{
		ID:        model.ID,
		Message:   model.Message,
		Area:      model.Area,
		Latitude:  model.Latitude,
		Longitude: model.Longitude,
		CreatedAt: model.CreatedAt,
	}
}

func ModelToRatingAverageResponse(model *models.RatingAggregate) RatingAverageResponse {
	resp := RatingAverageResponse{Area: model.Area, Count: model.Count}
	if model.Count > 0 {
		avg := model.Average
		resp.Avg = &avg
	}
	return resp
}

func ModelToPlaceResponse(model *models.SafePlace) *PlaceResponse {
	return &PlaceResponse{
		ID:          model.ID,
		Name:        model.Name,
		Area:        model.Area,
		Latitude:    model.Latitude,
		Longitude:   model.Longitude,
		Description: model.Description,
		Approved:    model.Approved,
		CreatedAt:   model.CreatedAt,
	}
}

// ModelsToAdminPlacesResponse делит точки на ожидающие модерации и одобренные
func ModelsToAdminPlacesResponse(places []*models.SafePlace) *AdminPlacesResponse {
	resp := &AdminPlacesResponse{
		Pending:  make([]*PlaceResponse, 0),
		Approved: make([]*PlaceResponse, 0),
	}
	for _, place := range places {
		if place.Approved {
			resp.Approved = append(resp.Approved, ModelToPlaceResponse(place))
		} else {
			resp.Pending = append(resp.Pending, ModelToPlaceResponse(place))
		}
	}
	return resp
}

func ModelToVolunteerResponse(model *models.Volunteer) *VolunteerResponse {
	return &VolunteerResponse{
		ID:        model.ID,
		UserID:    model.UserID,
		Area:      model.Area,
		Verified:  model.Verified,
		CreatedAt: model.CreatedAt,
		UserName:  model.UserName,
		UserEmail: model.UserEmail,
	}
}

func ModelToCheckinResponse(model *models.Checkin) *CheckinResponse {
	return &CheckinResponse{
		ID:        model.ID,
		DueAt:     model.DueAt,
		Resolved:  model.Resolved,
		CreatedAt: model.CreatedAt,
	}
}
