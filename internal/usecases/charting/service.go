package charting

import (
	"fmt"
	"io"

	"github.com/vfg2006/sales-visualiser/infrastructure/datastore"
	"github.com/vfg2006/sales-visualiser/infrastructure/render"
	"github.com/vfg2006/sales-visualiser/internal/domain"
)

type Service struct {
	store       datastore.RecordStore
	renderer    render.Renderer
	productName string
}

func NewService(store datastore.RecordStore, renderer render.Renderer, productName string) Charter {
	return &Service{
		store:       store,
		renderer:    renderer,
		productName: productName,
	}
}

func (s *Service) Series(selection domain.Selection) domain.AggregatedSeries {
	return ComputeSeries(s.store.AllRecords(), selection)
}

func (s *Service) Figure(selection domain.Selection) *domain.Figure {
	return &domain.Figure{
		Title:      s.title(selection),
		XAxisTitle: domain.XAxisTitle,
		YAxisTitle: domain.YAxisTitle,
		Selection:  selection,
		Series:     s.Series(selection),
	}
}

func (s *Service) Render(w io.Writer, fig *domain.Figure) error {
	if err := s.renderer.Render(w, fig); err != nil {
		return fmt.Errorf("%w: %v", ErrRender, err)
	}
	return nil
}

func (s *Service) ContentType() string {
	return s.renderer.ContentType()
}

// title segue o formato "Daily Sales of Pink Morsels (North)"
func (s *Service) title(selection domain.Selection) string {
	return fmt.Sprintf("Daily Sales of %s (%s)", s.productName, selection.DisplayName())
}
