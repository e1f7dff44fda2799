package charting

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/vfg2006/sales-visualiser/internal/domain"
	"github.com/vfg2006/sales-visualiser/pkg/log"
)

// State é o estado do controlador de uma sessão
type State int32

const (
	StateIdle State = iota
	StateUpdating
)

func (s State) String() string {
	if s == StateUpdating {
		return "updating"
	}
	return "idle"
}

// View é o resultado de uma atualização: a figura e o gráfico desenhado
type View struct {
	Figure *domain.Figure
	Image  []byte
}

// ViewResponse é a representação JSON de uma View
type ViewResponse struct {
	Figure domain.FigureResponse `json:"figure"`
	SVG    string                `json:"svg"`
}

func (v *View) Response() ViewResponse {
	return ViewResponse{
		Figure: v.Figure.ToResponse(),
		SVG:    string(v.Image),
	}
}

// Controller guarda a seleção de uma sessão e refaz o gráfico a cada mudança.
// As atualizações são serializadas: um novo evento só é processado depois que
// o gráfico anterior terminou de ser desenhado
type Controller struct {
	charter Charter

	mu        sync.Mutex // serializa as atualizações e protege selection
	selection domain.Selection
	state     atomic.Int32
}

func NewController(charter Charter) *Controller {
	return &Controller{
		charter:   charter,
		selection: domain.DefaultSelection,
	}
}

// State retorna o estado atual sem esperar a atualização em andamento
func (c *Controller) State() State {
	return State(c.state.Load())
}

// Selection retorna a seleção atual
func (c *Controller) Selection() domain.Selection {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selection
}

// HandleSelection troca a seleção e redesenha o gráfico
func (c *Controller) HandleSelection(ctx context.Context, selection domain.Selection) (*View, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	view, err := c.update(ctx, selection)
	if err != nil {
		return nil, err
	}

	// Só troca a seleção depois que o novo gráfico foi desenhado
	c.selection = selection
	return view, nil
}

// Refresh redesenha o gráfico da seleção atual
func (c *Controller) Refresh(ctx context.Context) (*View, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.update(ctx, c.selection)
}

// OnRegionSelected é o handler do evento de mudança do controle de região
func (c *Controller) OnRegionSelected(ctx context.Context, value string) (*View, error) {
	selection, err := domain.ParseSelection(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSelection, value)
	}
	return c.HandleSelection(ctx, selection)
}

// Bind registra os handlers do controlador no dispatcher
func (c *Controller) Bind(d *Dispatcher) {
	d.On(EventRegionSelector, c.OnRegionSelected)
}

// update desenha a seleção informada. Deve ser chamado com mu travado
func (c *Controller) update(ctx context.Context, selection domain.Selection) (*View, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.state.Store(int32(StateUpdating))
	defer c.state.Store(int32(StateIdle))

	start := time.Now()
	fig := c.charter.Figure(selection)

	var buf bytes.Buffer
	if err := c.charter.Render(&buf, fig); err != nil {
		return nil, err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"selection":   selection,
		"points":      len(fig.Series),
		"duration_ms": time.Since(start).Milliseconds(),
	}).Debug("charting: gráfico atualizado")

	return &View{Figure: fig, Image: buf.Bytes()}, nil
}
