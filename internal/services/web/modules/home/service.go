package home

import (
	"context"
	"errors"
	"strings"

	"github.com/louisbranch/mindmap.space/internal/mindmap/element"
	"github.com/louisbranch/mindmap.space/internal/mindmap/layout"
	"github.com/louisbranch/mindmap.space/internal/mindmap/motion"
	"github.com/louisbranch/mindmap.space/internal/mindmap/scroll"
	"github.com/louisbranch/mindmap.space/internal/platform/logging"
	"github.com/louisbranch/mindmap.space/internal/services/web/content"
	apperrors "github.com/louisbranch/mindmap.space/internal/services/web/platform/errors"
	"github.com/louisbranch/mindmap.space/internal/services/web/templates"
	"github.com/microcosm-cc/bluemonday"
)

type service struct {
	gateway   ElementGateway
	sanitizer *bluemonday.Policy
}

func newService(gateway ElementGateway) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return service{gateway: gateway, sanitizer: descriptionPolicy()}
}

// descriptionPolicy keeps inline formatting only. Spheres may already be
// links, so anchors are stripped to their text.
func descriptionPolicy() *bluemonday.Policy {
	return bluemonday.NewPolicy().AllowElements("p", "br", "strong", "em", "b", "i", "u", "ul", "ol", "li", "span")
}

func (s service) configured() bool {
	_, unavailable := s.gateway.(unavailableGateway)
	return !unavailable
}

// loadElements never fails: a failed fetch is logged and yields no elements.
func (s service) loadElements(ctx context.Context) element.Sequence {
	seq, err := s.gateway.LoadElements(ctx)
	if err != nil {
		logger := logging.FromContext(ctx).With("collection", element.Collection, "kind", apperrors.KindOf(err))
		if errors.Is(err, context.Canceled) {
			logger.Debug("element fetch canceled", "err", err)
		} else {
			logger.Warn("element fetch failed", "err", err)
		}
		return element.Sequence{}
	}
	return seq
}

func (s service) loadHome(ctx context.Context, doc content.Document) templates.HomeView {
	placements := layout.PlaceAll(s.loadElements(ctx))
	spheres := make([]templates.Sphere, 0, len(placements))
	for _, placement := range placements {
		spheres = append(spheres, s.sphere(placement))
	}
	hero, cards := restingFrames(len(doc.Dynamics.Cards))
	return templates.HomeView{
		Spheres:    spheres,
		Copy:       doc,
		HeroStyle:  hero,
		CardStyles: cards,
	}
}

func (s service) sphere(placement layout.Placement) templates.Sphere {
	el := placement.Element
	params := placement.Params
	return templates.Sphere{
		ID:              el.ID,
		Index:           el.Index,
		Label:           el.Label,
		AltText:         el.DisplayLabel(),
		DescriptionHTML: strings.TrimSpace(s.sanitizer.Sanitize(el.Description)),
		ImageURL:        el.ImageRef,
		LinkURL:         el.LinkURL,
		LeftPercent:     params.HorizontalPercent,
		TopPercent:      params.VerticalPercent,
		SizePx:          params.SizePx,
		DriftYSeconds:   params.DriftY.DurationSeconds,
		DriftXSeconds:   params.DriftX.DurationSeconds,
		SwaySeconds:     params.Rotate.DurationSeconds,
	}
}

// Nominal geometry used to place regions in view when computing resting
// frames. Only the proportions matter.
const (
	restingViewportHeight = 800
	restingCardHeight     = 400
)

// restingFrames computes the inline styles of the scroll-linked blocks as a
// reader sees them once each block is in view: the hero at the top of the page
// and every card centered in the viewport. Browsers with scroll timelines
// replace them with the animated frames.
func restingFrames(cardCount int) (string, []string) {
	tracker := scroll.NewTracker()
	tracker.Mount(scroll.Region{
		ID:    templates.HeroRegionID,
		Range: scroll.PageSpan,
		Measure: func() (scroll.Geometry, bool) {
			return scroll.Geometry{Top: 0, Height: 2 * restingViewportHeight}, true
		},
	})
	centered := func() (scroll.Geometry, bool) {
		return scroll.Geometry{Top: (restingViewportHeight - restingCardHeight) / 2, Height: restingCardHeight}, true
	}
	for i := 0; i < cardCount; i++ {
		tracker.Mount(scroll.Region{ID: templates.CardRegionID(i), Range: scroll.EnterToCenter, Measure: centered})
	}
	tracker.Update(scroll.Viewport{ScrollY: 0, Height: restingViewportHeight})

	cards := make([]string, 0, cardCount)
	for i := 0; i < cardCount; i++ {
		cards = append(cards, motion.StickyCardReveal(tracker.Progress(templates.CardRegionID(i))).Style())
	}
	return motion.HeroDissolve(tracker.Progress(templates.HeroRegionID)).Style(), cards
}
