package charting

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	storemocks "github.com/vfg2006/sales-visualiser/infrastructure/datastore/mocks"
	rendermocks "github.com/vfg2006/sales-visualiser/infrastructure/render/mocks"
	"github.com/vfg2006/sales-visualiser/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_Figure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := storemocks.NewMockRecordStore(ctrl)
	renderer := rendermocks.NewMockRenderer(ctrl)
	store.EXPECT().AllRecords().Return(scenarioRecords()).AnyTimes()

	service := NewService(store, renderer, "Pink Morsels")

	tests := []struct {
		selection domain.Selection
		title     string
		points    int
	}{
		{selection: domain.SelectionAll, title: "Daily Sales of Pink Morsels (All)", points: 2},
		{selection: domain.SelectionNorth, title: "Daily Sales of Pink Morsels (North)", points: 2},
		{selection: domain.SelectionSouth, title: "Daily Sales of Pink Morsels (South)", points: 1},
		{selection: domain.SelectionWest, title: "Daily Sales of Pink Morsels (West)", points: 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.selection), func(t *testing.T) {
			fig := service.Figure(tt.selection)

			assert.Equal(t, tt.title, fig.Title)
			assert.Equal(t, "Date", fig.XAxisTitle)
			assert.Equal(t, "Total Sales", fig.YAxisTitle)
			assert.Equal(t, tt.selection, fig.Selection)
			assert.Len(t, fig.Series, tt.points)
		})
	}
}

func TestService_Render(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := storemocks.NewMockRecordStore(ctrl)
	renderer := rendermocks.NewMockRenderer(ctrl)
	service := NewService(store, renderer, "Pink Morsels")

	fig := &domain.Figure{Title: "x"}

	renderer.EXPECT().
		Render(gomock.Any(), fig).
		DoAndReturn(func(w io.Writer, _ *domain.Figure) error {
			_, err := w.Write([]byte("<svg/>"))
			return err
		})

	var buf bytes.Buffer
	require.NoError(t, service.Render(&buf, fig))
	assert.Equal(t, "<svg/>", buf.String())

	renderer.EXPECT().Render(gomock.Any(), fig).Return(errors.New("boom"))
	err := service.Render(&buf, fig)
	assert.ErrorIs(t, err, ErrRender)

	renderer.EXPECT().ContentType().Return("image/svg+xml")
	assert.Equal(t, "image/svg+xml", service.ContentType())
}
