package game

import (
	"errors"
	"fmt"

	"github.com/der-antikeks/triangles/assets"
	"github.com/der-antikeks/triangles/config"
	"github.com/der-antikeks/triangles/engine"
)

type item struct {
	scene   *Scene
	program string
	mesh    *engine.Mesh
}

func (i *item) Program() *engine.Program { return i.scene.programs[i.program] }
func (i *item) Mesh() *engine.Mesh       { return i.mesh }

/*
	compiled programs and uploaded triangles

	programs are looked up by name on every draw, so a reload
	swaps them without touching the meshes.
*/
type Scene struct {
	cfg    *config.Config
	loader *assets.Loader

	programs map[string]*engine.Program
	items    []engine.Drawable

	// compiles a configured program by name
	build func(name string) (*engine.Program, error)
}

func NewScene(cfg *config.Config, loader *assets.Loader) (*Scene, error) {
	if err := checkPrograms(cfg, Triangles); err != nil {
		return nil, err
	}

	s := &Scene{
		cfg:      cfg,
		loader:   loader,
		programs: map[string]*engine.Program{},
	}
	s.build = s.compile

	for _, n := range cfg.ProgramNames() {
		p, err := s.build(n)
		if err != nil {
			s.Dispose()
			return nil, err
		}
		s.programs[n] = p
	}

	for i, t := range Triangles {
		m, err := engine.NewMesh(t.Data(), engine.PositionLayout)
		if err != nil {
			s.Dispose()
			return nil, fmt.Errorf("triangle %d: %w", i, err)
		}
		s.items = append(s.items, &item{scene: s, program: t.Program, mesh: m})
	}

	return s, nil
}

func (s *Scene) compile(name string) (*engine.Program, error) {
	p := s.cfg.Programs[name]

	vertex, err := s.loader.ShaderSource(p.Vertex)
	if err != nil {
		return nil, fmt.Errorf("program %q: %w", name, err)
	}
	fragment, err := s.loader.ShaderSource(p.Fragment)
	if err != nil {
		return nil, fmt.Errorf("program %q: %w", name, err)
	}

	prg, err := engine.NewProgram(vertex, fragment)
	if err != nil {
		return nil, fmt.Errorf("program %q: %w", name, err)
	}
	return prg, nil
}

func (s *Scene) Render(r *engine.Renderer) {
	r.Render(s.items...)
}

// Reload recompiles every program using file and reports the names of
// those replaced, a program failing to compile keeps its previous version
func (s *Scene) Reload(file string) ([]string, error) {
	names := programsUsing(s.cfg, file)
	if len(names) == 0 {
		return nil, nil
	}

	s.loader.Invalidate(file)

	var (
		reloaded []string
		errs     []error
	)
	for _, n := range names {
		p, err := s.build(n)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		if old := s.programs[n]; old != nil {
			old.Dispose()
		}
		s.programs[n] = p
		reloaded = append(reloaded, n)
	}

	return reloaded, errors.Join(errs...)
}

func (s *Scene) Dispose() {
	for _, it := range s.items {
		it.Mesh().Dispose()
	}
	s.items = nil

	for n, p := range s.programs {
		p.Dispose()
		delete(s.programs, n)
	}
}

func checkPrograms(cfg *config.Config, triangles []Triangle) error {
	for i, t := range triangles {
		if _, found := cfg.Programs[t.Program]; !found {
			return fmt.Errorf("triangle %d: unknown program %q", i, t.Program)
		}
	}
	return nil
}

func programsUsing(cfg *config.Config, file string) []string {
	var names []string
	for _, n := range cfg.ProgramNames() {
		if p := cfg.Programs[n]; p.Vertex == file || p.Fragment == file {
			names = append(names, n)
		}
	}
	return names
}
