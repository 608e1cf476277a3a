package cards

import (
	"testing"

	"github.com/mkarren/lanes/internal/model"
)

func TestResolveDimensions_PortraitGrid(t *testing.T) {
	p := Policy{Aspect: AspectPoster, HeightScale: 1}

	w, h := ResolveDimensions(p, false, DefaultHeightProfile, LayoutGrid, model.ImageTypePoster)

	if h != DefaultHeightProfile.Portrait {
		t.Errorf("portrait cards use the portrait height, got %d", h)
	}
	if w != 100 {
		t.Errorf("2:3 of height 150 rounds to 100, got %d", w)
	}
}

func TestResolveDimensions_LandscapeGrid(t *testing.T) {
	p := Policy{Aspect: Aspect16x9, HeightScale: 1}

	w, h := ResolveDimensions(p, false, DefaultHeightProfile, LayoutGrid, model.ImageTypePoster)

	if h != DefaultHeightProfile.Landscape {
		t.Errorf("landscape cards use the landscape height, got %d", h)
	}
	if w != 231 {
		t.Errorf("16:9 of height 130 rounds to 231, got %d", w)
	}
}

func TestResolveDimensions_StaticHeight(t *testing.T) {
	p := Policy{Aspect: Aspect16x9, HeightScale: 1}
	hp := HeightProfile{Landscape: 130, Portrait: 150, Static: 122}

	_, h := ResolveDimensions(p, true, hp, LayoutGrid, model.ImageTypePoster)

	if h != 122 {
		t.Errorf("static rows pin the height, got %d", h)
	}
}

func TestResolveDimensions_HeightScale(t *testing.T) {
	p := Policy{Aspect: Aspect16x9, HeightScale: 0.9}

	_, h := ResolveDimensions(p, false, DefaultHeightProfile, LayoutGrid, model.ImageTypePoster)

	if h != 117 {
		t.Errorf("scale 0.9 of 130 truncates to 117, got %d", h)
	}
}

func TestResolveDimensions_FixedDims(t *testing.T) {
	p := Policy{FixedWidth: 192, FixedHeight: 129, Aspect: Aspect16x9, HeightScale: 1}

	w, h := ResolveDimensions(p, false, DefaultHeightProfile, LayoutList, model.ImageTypeThumb)

	if w != 192 || h != 129 {
		t.Errorf("fixed dims bypass everything, got %dx%d", w, h)
	}
}

func TestResolveDimensions_ListOverrides(t *testing.T) {
	tests := []struct {
		name      string
		imageType model.ImageType
		aspect    float64
		wantW     int
		wantH     int
	}{
		{"poster list", model.ImageTypePoster, AspectPoster, 190, 285},
		{"banner list", model.ImageTypeBanner, AspectBanner, 90, 17},
		{"thumb list", model.ImageTypeThumb, Aspect16x9, 300, 169},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Policy{Aspect: tt.aspect, HeightScale: 1}
			w, h := ResolveDimensions(p, false, DefaultHeightProfile, LayoutList, tt.imageType)
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("got %dx%d, want %dx%d", w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestResolveDimensions_DegenerateWidthGuard(t *testing.T) {
	p := Policy{Aspect: 0.01, HeightScale: 1}
	hp := HeightProfile{Landscape: 130, Portrait: 1, Static: 1}

	w, _ := ResolveDimensions(p, false, hp, LayoutGrid, model.ImageTypePoster)

	if w != 115 {
		t.Errorf("degenerate widths clamp to 115, got %d", w)
	}
}

func TestResolveDimensions_ZeroAspectFallsBackToSquare(t *testing.T) {
	p := Policy{Aspect: 0, HeightScale: 1}

	w, h := ResolveDimensions(p, false, DefaultHeightProfile, LayoutGrid, model.ImageTypePoster)

	if w != h {
		t.Errorf("unknown aspect renders square, got %dx%d", w, h)
	}
}
