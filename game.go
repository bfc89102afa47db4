package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/colourblind/colour"
	"github.com/milk9111/colourblind/config"
	"github.com/milk9111/colourblind/ecs"
	"github.com/milk9111/colourblind/ecs/component"
	"github.com/milk9111/colourblind/ecs/entity"
	"github.com/milk9111/colourblind/ecs/system"
	"github.com/milk9111/colourblind/input"
	"github.com/milk9111/colourblind/level"
	"github.com/milk9111/colourblind/levels"
	"github.com/milk9111/colourblind/logger"
	"github.com/milk9111/colourblind/prefabs"
	"github.com/milk9111/colourblind/render"
	"github.com/milk9111/colourblind/telemetry"
	"go.uber.org/zap"
)

// maxStep caps one simulated step so a stalled frame cannot carry the player
// through a tile.
const maxStep = 1.0 / 20

type Options struct {
	Config     config.Config
	ConfigPath string
	Level      string
	Debug      bool
}

type Game struct {
	cfg     config.Config
	cfgPath string
	log     *zap.Logger

	world     *ecs.World
	scheduler *ecs.Scheduler
	clock     *ecs.Clock
	movement  *system.MovementSystem
	collision *system.CollisionSystem
	camera    *system.CameraSystem
	renderer  *system.RenderSystem
	target    *render.EbitenTarget
	hud       *render.HUD
	reveal    *render.Shader
	mask      *render.Shader

	levelFS  fs.FS
	names    []string
	index    int
	spec     *prefabs.PlayerSpec
	picker   level.ColourSource
	watcher  *prefabs.Watcher
	runs     *telemetry.Recorder
	respawns int
}

func NewGame(opts Options) (*Game, error) {
	g := &Game{
		cfg:     opts.Config,
		cfgPath: opts.ConfigPath,
		log:     logger.Named("game"),
		world:   ecs.NewWorld(),
		clock:   ecs.NewClock(maxStep),
		levelFS: levels.FS(opts.Config.Levels.Dir),
		picker:  colour.NewPicker(uint64(time.Now().UnixNano())),
		hud:     render.NewHUD(),
	}

	names, err := level.Discover(g.levelFS)
	if err != nil {
		return nil, err
	}
	g.names = names
	if opts.Level != "" {
		g.index = -1
		for i, n := range names {
			if n == opts.Level || n == opts.Level+".tmx" {
				g.index = i
			}
		}
		if g.index < 0 {
			return nil, fmt.Errorf("game: unknown level %q", opts.Level)
		}
	}

	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return nil, err
	}
	g.spec = spec

	if err := g.buildRenderer(); err != nil {
		return nil, err
	}
	if err := g.buildWorld(opts.Debug); err != nil {
		return nil, err
	}

	g.runs, err = telemetry.NewRecorder(g.cfg.Telemetry.Path)
	if err != nil {
		g.log.Warn("telemetry disabled", zap.Error(err))
		g.runs = nil
	}
	g.runs.Begin(g.index, g.names[g.index], g.world.Frame())

	g.watch()
	return g, nil
}

func (g *Game) buildRenderer() error {
	reveal, err := render.NewRevealShader()
	if err != nil {
		return err
	}
	mask, err := render.NewMaskShader()
	if err != nil {
		return err
	}
	g.reveal, g.mask = reveal, mask
	g.target = render.NewEbitenTarget(nil)
	g.renderer = system.NewRenderSystem(g.pass(g.cfg.Render.Mode), render.Tileset{})
	return nil
}

func (g *Game) pass(mode string) render.Pass {
	if mode == config.RenderFramebuffer {
		return render.NewFramebufferPass(g.reveal, g.mask)
	}
	return render.NewDirectRevealPass(g.reveal)
}

func (g *Game) buildWorld(debug bool) error {
	sheet, err := g.playerSheet()
	if err != nil {
		return err
	}
	if _, err := entity.NewPlayer(g.world, g.spec, g.cfg, sheet); err != nil {
		return err
	}
	if _, err := entity.NewCamera(g.world, g.cfg.Camera, float64(g.cfg.Window.Width), float64(g.cfg.Window.Height)); err != nil {
		return err
	}

	lvl, err := g.loadLevel(g.index)
	if err != nil {
		return err
	}
	if _, err := entity.NewLevel(g.world, lvl, g.index, g.spec.Spawn, g.cfg.Physics.KillY); err != nil {
		return err
	}
	g.renderer.SetTiles(render.NewTileset(int(lvl.TileWidth), int(lvl.TileHeight)))

	src := input.NewEbitenSource()
	g.movement = system.NewMovementSystem(g.cfg.Physics)
	g.collision = system.NewCollisionSystem()
	g.camera = system.NewCameraSystem()

	g.scheduler = ecs.NewScheduler(system.NewInputSystem(src))
	if debug {
		reset, err := input.ParseKeySet(g.cfg.Bindings.DebugReset)
		if err != nil {
			return fmt.Errorf("game: debug_reset: %w", err)
		}
		coords, err := input.ParseKeySet(g.cfg.Bindings.DebugCoords)
		if err != nil {
			return fmt.Errorf("game: debug_coords: %w", err)
		}
		g.scheduler.Add(system.NewDebugSystem(src, reset, coords))
	}
	g.scheduler.Add(system.NewFlashlightSystem())
	g.scheduler.Add(g.movement)
	g.scheduler.Add(g.collision)
	g.scheduler.Add(g.camera)
	g.scheduler.Add(system.NewAnimationSystem())

	g.camera.Snap(g.world)
	return nil
}

// playerSheet loads the prefab's sheet, or draws a placeholder wide enough
// for every frame the prefab names.
func (g *Game) playerSheet() (*ebiten.Image, error) {
	if g.spec.Animation.Sheet != "" {
		return render.LoadImage(nil, g.spec.Animation.Sheet)
	}
	frames, w, h := 0, 0, 0
	for _, d := range g.spec.Animation.Defs {
		frames = max(frames, d.ColStart+d.FrameCount)
		w, h = d.FrameW, d.FrameH
	}
	if frames == 0 {
		return nil, errors.New("game: player prefab has no animation frames")
	}
	return render.PlaceholderSheet(w, h, frames), nil
}

func (g *Game) loadLevel(i int) (*level.Level, error) {
	return level.LoadFS(g.levelFS, g.names[i], g.picker)
}

func (g *Game) Update() error {
	g.reload()

	dt := g.clock.Tick(time.Now())
	if !g.scheduler.Update(g.world, dt) {
		return nil
	}
	g.runs.Advance(dt)
	if n := g.collision.Respawns(); n > g.respawns {
		g.runs.Respawned(n - g.respawns)
		g.respawns = n
	}

	if req, ok := entity.TakeLevelChangeRequest(g.world); ok {
		return g.advance(req)
	}
	return nil
}

// advance moves to the level after req.FromLevel. Leaving the last level
// ends the game.
func (g *Game) advance(req component.LevelChangeRequest) error {
	if err := g.runs.Finish(g.world.Frame(), time.Now()); err != nil {
		g.log.Warn("telemetry write failed", zap.Error(err))
	}

	next := req.FromLevel + 1
	if next >= len(g.names) {
		g.log.Info("last level complete", zap.Int("levels", len(g.names)), zap.Uint64("frame", req.Frame))
		return ebiten.Termination
	}

	lvl, err := g.loadLevel(next)
	if err != nil {
		return err
	}
	if err := entity.ReplaceLevel(g.world, lvl, next, g.spec.Spawn); err != nil {
		return err
	}
	g.index = next
	g.renderer.SetTiles(render.NewTileset(int(lvl.TileWidth), int(lvl.TileHeight)))
	g.camera.Snap(g.world)
	g.runs.Begin(next, g.names[next], g.world.Frame())
	g.log.Info("level changed", zap.String("level", g.names[next]), zap.Int("index", next))
	return nil
}

// watch starts hot reload of the config file. Failure only disables reload.
func (g *Game) watch() {
	if g.cfgPath == "" {
		return
	}
	w, err := prefabs.NewWatcher(filepath.Dir(g.cfgPath))
	if err != nil {
		g.log.Warn("config watch disabled", zap.Error(err))
		return
	}
	g.watcher = w
}

func (g *Game) reload() {
	if g.watcher == nil {
		return
	}
	want, err := filepath.Abs(g.cfgPath)
	if err != nil {
		return
	}
	changed := false
	for _, name := range g.watcher.Poll() {
		if abs, err := filepath.Abs(name); err == nil && abs == want {
			changed = true
		}
	}
	if !changed {
		return
	}

	cfg, err := config.Load(g.cfgPath)
	if err != nil {
		g.log.Warn("config reload rejected", zap.String("path", g.cfgPath), zap.Error(err))
		return
	}
	g.movement.SetPhysics(cfg.Physics)
	entity.ApplyTuning(g.world, cfg)
	if e, ok := g.world.First(component.LevelGeometryComponent.Kind()); ok {
		if geom, _ := ecs.Get(g.world, e, component.LevelGeometryComponent.Kind()); geom != nil {
			geom.KillY = cfg.Physics.KillY
		}
	}
	if cfg.Render.Mode != g.cfg.Render.Mode {
		g.renderer.SetPass(g.pass(cfg.Render.Mode))
	}
	g.cfg = cfg
	g.log.Info("config reloaded", zap.String("path", g.cfgPath), zap.String("render", cfg.Render.Mode))
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.target.SetDestination(screen)
	g.renderer.Draw(g.world, g.target)
	g.hud.Draw(screen, g.status())
}

func (g *Game) status() render.Status {
	s := render.Status{
		Level:    g.names[g.index],
		Index:    g.index,
		Total:    len(g.names),
		Respawns: g.respawns,
	}
	p, ok := g.world.First(component.PlayerTagComponent.Kind())
	if !ok {
		return s
	}
	if c, ok := ecs.Get(g.world, p, component.ColouredComponent.Kind()); ok {
		s.Colour = c.Colour
	}
	if f, ok := ecs.Get(g.world, p, component.FlashlightComponent.Kind()); ok {
		switch {
		case f.Active():
			s.Flashlight = render.FlashlightOn
			s.Remaining = f.Duration - f.OnElapsed
		case f.CoolingDown():
			s.Flashlight = render.FlashlightCooling
			s.Remaining = f.CooldownRemaining
		}
	}
	return s
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}

// Close releases the watcher and telemetry file.
func (g *Game) Close() error {
	var errs []error
	if g.watcher != nil {
		errs = append(errs, g.watcher.Close())
	}
	errs = append(errs, g.runs.Close())
	return errors.Join(errs...)
}

// exists reports whether path names an existing file.
func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
