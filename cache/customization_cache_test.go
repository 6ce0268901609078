package customization_cache

import (
	"testing"

	"github.com/yacbhl71/DELICES-DALGERIE-sub000/models"
)

func TestCacheSetGetInvalidate(t *testing.T) {
	Invalidate()

	if _, ok := Get(); ok {
		t.Fatal("empty cache should miss")
	}

	settings := models.DefaultCustomization()
	settings.PrimaryColor = "#123456"
	Set(settings)

	got, ok := Get()
	if !ok {
		t.Fatal("expected cache hit after Set")
	}
	if got.PrimaryColor != "#123456" {
		t.Fatalf("cached value mismatch: %s", got.PrimaryColor)
	}

	Invalidate()
	if _, ok := Get(); ok {
		t.Fatal("cache should miss after Invalidate")
	}
}
