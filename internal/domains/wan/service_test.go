package wan_test

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netvista-io/cellular-agent/internal/domains/wan"
	"github.com/netvista-io/cellular-agent/internal/entities"
)

func TestService_Resolve(t *testing.T) {
	t.Parallel()

	testTable := []struct {
		name         string
		cellularIP   string
		statuses     entities.WanStatuses
		expectedName string
		expectedOK   bool
	}{
		{
			name:       "resolves matching interface",
			cellularIP: "9.9.9.9",
			statuses: entities.WanStatuses{
				{Name: "wan", IP: "1.2.3.4"},
				{Name: "wan3", IP: "9.9.9.9"},
			},
			expectedName: "wan3",
			expectedOK:   true,
		},
		{
			name:       "no interface carries the cellular ip",
			cellularIP: "10.10.10.10",
			statuses: entities.WanStatuses{
				{Name: "wan", IP: "1.2.3.4"},
				{Name: "wan2", IP: "5.6.7.8"},
			},
		},
		{
			name:       "duplicate ip resolves to lowest-numbered interface",
			cellularIP: "9.9.9.9",
			statuses: entities.WanStatuses{
				{Name: "wan3", IP: "9.9.9.9"},
				{Name: "wan2", IP: "9.9.9.9"},
			},
			expectedName: "wan2",
			expectedOK:   true,
		},
		{
			name:       "bare wan outranks numbered interfaces",
			cellularIP: "9.9.9.9",
			statuses: entities.WanStatuses{
				{Name: "wan2", IP: "9.9.9.9"},
				{Name: "wan", IP: "9.9.9.9"},
			},
			expectedName: "wan",
			expectedOK:   true,
		},
		{
			name:       "empty cellular ip never matches",
			cellularIP: "",
			statuses: entities.WanStatuses{
				{Name: "wan", IP: ""},
			},
		},
		{
			name:       "empty status list",
			cellularIP: "9.9.9.9",
		},
	}

	for _, testCase := range testTable {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			service := wan.NewService()

			link, found := service.Resolve(testCase.cellularIP, testCase.statuses)
			assert.Equal(t, testCase.expectedOK, found)
			if !testCase.expectedOK {
				return
			}

			assert.Equal(t, testCase.expectedName, link.Name)
		})
	}
}

func TestService_Resolve_CarriesHealthFields(t *testing.T) {
	t.Parallel()

	service := wan.NewService()
	statuses := entities.WanStatuses{
		{
			Name:           "wan2",
			IP:             "10.0.0.5",
			Availability:   lo.ToPtr(99.8),
			LatencyAverage: lo.ToPtr(42.5),
			Uptime:         lo.ToPtr(int64(86400)),
		},
	}

	link, found := service.Resolve("10.0.0.5", statuses)
	require.True(t, found)
	assert.Equal(t, "wan2", link.Name)
	require.NotNil(t, link.Availability)
	assert.InDelta(t, 99.8, *link.Availability, 0.001)
	require.NotNil(t, link.LatencyAverage)
	assert.InDelta(t, 42.5, *link.LatencyAverage, 0.001)
	require.NotNil(t, link.Uptime)
	assert.Equal(t, int64(86400), *link.Uptime)
}
