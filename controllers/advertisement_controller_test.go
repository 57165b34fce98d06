package controllers

import (
	"testing"

	"affiliate-hub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdFromRequestParsesWindow(t *testing.T) {
	ad, err := adFromRequest(models.AdvertisementRequest{
		Type:      "featured",
		Title:     "Summer sale",
		StartDate: "2026-06-01",
		EndDate:   "2026-06-30",
	})
	require.NoError(t, err)
	require.NotNil(t, ad.StartDate)
	require.NotNil(t, ad.EndDate)
	assert.Equal(t, "2026-06-01", ad.StartDate.Format("2006-01-02"))
}

func TestAdFromRequestRejectsInvertedWindow(t *testing.T) {
	_, err := adFromRequest(models.AdvertisementRequest{
		Type:      "featured",
		Title:     "Backwards",
		StartDate: "2026-06-30",
		EndDate:   "2026-06-01",
	})
	assert.Error(t, err)
}

func TestAdFromRequestRejectsBadDate(t *testing.T) {
	_, err := adFromRequest(models.AdvertisementRequest{
		Type:      "featured",
		Title:     "Bad date",
		StartDate: "June 1st",
	})
	assert.Error(t, err)
}

func TestAdFromRequestAllowsOpenWindow(t *testing.T) {
	ad, err := adFromRequest(models.AdvertisementRequest{
		Type:  "sponsored",
		Title: "Evergreen",
	})
	require.NoError(t, err)
	assert.Nil(t, ad.StartDate)
	assert.Nil(t, ad.EndDate)
}
