// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/custom-lobby/internal/clients/datadragon"
	datadragonmock "github.com/KirkDiggler/custom-lobby/internal/clients/datadragon/mock"
	"github.com/KirkDiggler/custom-lobby/internal/entities/lol"
)

// ExpectCatalogLoad sets up the version lookup and catalog load a draw performs
func ExpectCatalogLoad(mockClient *datadragonmock.MockClient, requested string, catalog *lol.Catalog) {
	mockClient.EXPECT().
		ResolveVersion(gomock.Any(), &datadragon.ResolveVersionInput{Version: requested}).
		Return(&datadragon.ResolveVersionOutput{Version: catalog.Version}, nil)

	mockClient.EXPECT().
		ListChampions(gomock.Any(), &datadragon.ListChampionsInput{Version: catalog.Version}).
		Return(&datadragon.ListChampionsOutput{Catalog: catalog}, nil)
}
