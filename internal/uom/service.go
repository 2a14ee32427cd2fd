package uom

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=uom
type Repository interface {
	// ListConversions returns the global edges plus the edges specific to itemID.
	ListConversions(ctx context.Context, itemID uuid.UUID) ([]*Conversion, error)
	UpsertConversion(ctx context.Context, c *Conversion) error
}

const (
	resultScale   = 6
	divisionScale = 16
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type AddParams struct {
	ItemID  *uuid.UUID
	FromUOM string
	ToUOM   string
	Factor  decimal.Decimal
}

func (s *Service) AddConversion(ctx context.Context, params AddParams) (*Conversion, error) {
	from, to := normalize(params.FromUOM), normalize(params.ToUOM)
	if from == "" || to == "" {
		return nil, ErrInvalidUnit
	}

	if from == to {
		return nil, fmt.Errorf("%w: %s to itself", ErrInvalidUnit, from)
	}

	if !params.Factor.IsPositive() {
		return nil, ErrInvalidFactor
	}

	c := &Conversion{
		ItemID:  params.ItemID,
		FromUOM: from,
		ToUOM:   to,
		Factor:  params.Factor,
	}
	if err := s.repo.UpsertConversion(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *Service) ListConversions(ctx context.Context, itemID uuid.UUID) ([]*Conversion, error) {
	return s.repo.ListConversions(ctx, itemID)
}

// Convert expresses qty of unit from in unit to for the given item. Item-specific
// edges take precedence over global ones; multi-hop chains resolve through the
// shortest path over direct and inverse edges.
func (s *Service) Convert(ctx context.Context, itemID uuid.UUID, qty decimal.Decimal, from, to string) (decimal.Decimal, error) {
	from, to = normalize(from), normalize(to)
	if from == "" || to == "" {
		return decimal.Zero, ErrInvalidUnit
	}

	if from == to {
		return qty, nil
	}

	g, err := s.graph(ctx, itemID)
	if err != nil {
		return decimal.Zero, err
	}

	path, ok := g.shortestPath(from, to)
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %s to %s", ErrNoConversion, from, to)
	}

	result := qty
	for _, e := range path {
		result = e.apply(result)
	}

	return result.Round(resultScale), nil
}

// ValidateChain checks that every consecutive pair of units can be converted.
func (s *Service) ValidateChain(ctx context.Context, itemID uuid.UUID, units []string) error {
	if len(units) < 2 {
		return fmt.Errorf("%w: a chain needs at least two units", ErrInvalidUnit)
	}

	g, err := s.graph(ctx, itemID)
	if err != nil {
		return err
	}

	for i := 1; i < len(units); i++ {
		from, to := normalize(units[i-1]), normalize(units[i])
		if from == "" || to == "" {
			return ErrInvalidUnit
		}

		if from == to {
			continue
		}

		if _, ok := g.shortestPath(from, to); !ok {
			return fmt.Errorf("%w: %s to %s", ErrNoConversion, from, to)
		}
	}

	return nil
}

func (s *Service) graph(ctx context.Context, itemID uuid.UUID) (graph, error) {
	convs, err := s.repo.ListConversions(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("listing conversions: %w", err)
	}

	var global, specific []*Conversion

	for _, c := range convs {
		if c.Global() {
			global = append(global, c)
			continue
		}

		if *c.ItemID == itemID {
			specific = append(specific, c)
		}
	}

	g := make(graph)
	g.apply(global)
	g.apply(specific)

	return g, nil
}

func normalize(unit string) string {
	return strings.ToLower(strings.TrimSpace(unit))
}

type edge struct {
	to      string
	factor  decimal.Decimal
	inverse bool
}

func (e edge) apply(qty decimal.Decimal) decimal.Decimal {
	if e.inverse {
		return qty.DivRound(e.factor, divisionScale)
	}

	return qty.Mul(e.factor)
}

type graph map[string]map[string]edge

func (g graph) set(from string, e edge) {
	if g[from] == nil {
		g[from] = make(map[string]edge)
	}

	g[from][e.to] = e
}

// apply layers convs over the graph. A direct edge always wins over the
// inverse of the opposite edge from the same layer.
func (g graph) apply(convs []*Conversion) {
	direct := make(map[[2]string]bool, len(convs))

	for _, c := range convs {
		from, to := normalize(c.FromUOM), normalize(c.ToUOM)
		g.set(from, edge{to: to, factor: c.Factor})
		direct[[2]string{from, to}] = true
	}

	for _, c := range convs {
		from, to := normalize(c.FromUOM), normalize(c.ToUOM)
		if direct[[2]string{to, from}] {
			continue
		}

		g.set(to, edge{to: from, factor: c.Factor, inverse: true})
	}
}

// shortestPath runs a breadth-first search and returns the edges to walk.
// Neighbours are visited in lexical order so that equal-length paths resolve
// deterministically.
func (g graph) shortestPath(from, to string) ([]edge, bool) {
	if _, ok := g[from]; !ok {
		return nil, false
	}

	type visit struct {
		via  edge
		prev string
	}

	seen := map[string]visit{from: {}}
	queue := []string{from}

	for len(queue) > 0 {
		unit := queue[0]
		queue = queue[1:]

		if unit == to {
			break
		}

		neighbours := make([]string, 0, len(g[unit]))
		for n := range g[unit] {
			neighbours = append(neighbours, n)
		}

		slices.Sort(neighbours)

		for _, n := range neighbours {
			if _, ok := seen[n]; ok {
				continue
			}

			seen[n] = visit{via: g[unit][n], prev: unit}
			queue = append(queue, n)
		}
	}

	if _, ok := seen[to]; !ok {
		return nil, false
	}

	var path []edge
	for unit := to; unit != from; unit = seen[unit].prev {
		path = append(path, seen[unit].via)
	}

	slices.Reverse(path)

	return path, true
}
