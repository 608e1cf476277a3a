package client

import (
	"time"

	"github.com/google/uuid"

	"github.com/mkarren/lanes/internal/model"
)

// itemsResponse is the wire shape of a paged item query.
type itemsResponse struct {
	Items            []itemDTO `json:"Items"`
	TotalRecordCount int       `json:"TotalRecordCount"`
	StartIndex       int       `json:"StartIndex"`
}

// itemDTO is the wire shape of a single item.
type itemDTO struct {
	ID                    string            `json:"Id"`
	Type                  string            `json:"Type"`
	Name                  string            `json:"Name"`
	SeriesName            string            `json:"SeriesName"`
	Overview              string            `json:"Overview"`
	CollectionType        string            `json:"CollectionType"`
	PrimaryImageAspect    float64           `json:"PrimaryImageAspectRatio"`
	ImageTags             map[string]string `json:"ImageTags"`
	ImageBlurHashes       map[string]map[string]string `json:"ImageBlurHashes"`
	ParentThumbItemID     string            `json:"ParentThumbItemId"`
	ParentThumbImageTag   string            `json:"ParentThumbImageTag"`
	SeriesID              string            `json:"SeriesId"`
	SeriesPrimaryImageTag string            `json:"SeriesPrimaryImageTag"`
	LocationType          string            `json:"LocationType"`
	PremiereDate          *time.Time        `json:"PremiereDate"`
	StartDate             *time.Time        `json:"StartDate"`
	RunTimeTicks          int64             `json:"RunTimeTicks"`
	CommunityRating       float64           `json:"CommunityRating"`
	ProductionYear        int               `json:"ProductionYear"`
	UserData              *userDataDTO      `json:"UserData"`
}

type userDataDTO struct {
	Played                bool  `json:"Played"`
	UnplayedItemCount     *int  `json:"UnplayedItemCount"`
	PlaybackPositionTicks int64 `json:"PlaybackPositionTicks"`
	IsFavorite            bool  `json:"IsFavorite"`
}

// toModel converts one wire item into the domain shape. Unknown image
// tag names are dropped; unparseable ids come back as the nil uuid.
func (d itemDTO) toModel() model.Item {
	item := model.Item{
		ID:             parseID(d.ID),
		Kind:           model.KindFromString(d.Type),
		Name:           d.Name,
		Subtitle:       d.SeriesName,
		Summary:        d.Overview,
		CollectionType: parseCollectionType(d.CollectionType),
		PrimaryAspect:  d.PrimaryImageAspect,
		SeriesID:       parseID(d.SeriesID),
		SeriesPrimaryTag: d.SeriesPrimaryImageTag,
		ParentThumbItemID: parseID(d.ParentThumbItemID),
		ParentThumbTag:    d.ParentThumbImageTag,
		LocationVirtual:   d.LocationType == "Virtual",
		PremiereDate:      d.PremiereDate,
		StartDate:         d.StartDate,
		RunTimeTicks:      d.RunTimeTicks,
		CommunityRating:   float32(d.CommunityRating),
		ProductionYear:    d.ProductionYear,
	}

	if len(d.ImageTags) > 0 {
		item.ImageTags = make(map[model.ImageKind]string, len(d.ImageTags))
		for name, tag := range d.ImageTags {
			if kind, ok := parseImageKind(name); ok {
				item.ImageTags[kind] = tag
			}
		}
	}
	if len(d.ImageBlurHashes) > 0 {
		item.BlurHashes = make(map[model.ImageKind]string)
		for name, hashes := range d.ImageBlurHashes {
			kind, ok := parseImageKind(name)
			if !ok {
				continue
			}
			if tag, tagged := item.ImageTags[kind]; tagged {
				if h, found := hashes[tag]; found {
					item.BlurHashes[kind] = h
					continue
				}
			}
			for _, h := range hashes {
				item.BlurHashes[kind] = h
				break
			}
		}
	}

	if d.UserData != nil {
		item.UserData = &model.UserData{
			Played:                d.UserData.Played,
			UnplayedItemCount:     d.UserData.UnplayedItemCount,
			PlaybackPositionTicks: d.UserData.PlaybackPositionTicks,
			Favorite:              d.UserData.IsFavorite,
		}
	}

	return item
}

func parseID(s string) uuid.UUID {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil
	}
	return id
}

func parseCollectionType(s string) model.CollectionType {
	switch s {
	case "movies":
		return model.CollectionMovies
	case "tvshows":
		return model.CollectionTVShows
	case "music":
		return model.CollectionMusic
	case "livetv":
		return model.CollectionLiveTV
	default:
		return model.CollectionOther
	}
}

func parseImageKind(s string) (model.ImageKind, bool) {
	switch s {
	case "Primary":
		return model.ImagePrimary, true
	case "Thumb":
		return model.ImageThumb, true
	case "Banner":
		return model.ImageBanner, true
	case "Logo":
		return model.ImageLogo, true
	case "Backdrop":
		return model.ImageBackdrop, true
	default:
		return 0, false
	}
}

func imageKindName(k model.ImageKind) string {
	switch k {
	case model.ImageThumb:
		return "Thumb"
	case model.ImageBanner:
		return "Banner"
	case model.ImageLogo:
		return "Logo"
	case model.ImageBackdrop:
		return "Backdrop"
	default:
		return "Primary"
	}
}
