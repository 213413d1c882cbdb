package usecase

import (
	"context"
	"testing"

	"atuestampa_api/internal/domain/entities"
	mock_interfaces "atuestampa_api/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestLocationUseCase_NormalizesCodes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_interfaces.NewMockILocationRepository(ctrl)
	repo.EXPECT().ListDepartments(gomock.Any(), "CO").Return([]entities.Department{{Code: "05", Name: "Antioquia"}}, nil)
	repo.EXPECT().ListCities(gomock.Any(), "05").Return([]entities.City{{Code: "05001", Name: "Medellín"}}, nil)

	uc := NewLocationUseCase(repo)

	if _, err := uc.ListDepartments(context.Background(), " co "); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uc.ListCities(context.Background(), " 05 "); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
