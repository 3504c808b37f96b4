package engine

import (
	"log"
	"math/rand/v2"
	"time"
)

// Options wires an Engine to its collaborators, zero values get defaults
type Options struct {
	Config Config
	Loop   *Loop        // Shared loop, created over Time when nil
	Time   TimeProvider // Used only when Loop is nil
	Rand   *rand.Rand
	Store  ScoreStore
	Assets AssetLoader
}

// Engine is one snake game instance
// Every method must be called on the loop goroutine; other goroutines use Loop.Post
type Engine struct {
	cfg    Config
	loop   *Loop
	rng    *rand.Rand
	store  ScoreStore
	loader AssetLoader

	queue    *EventQueue
	router   *EventRouter
	renderer FrameRenderer

	assets [assetCount]*Asset

	phase   Phase
	started bool

	snake   *Snake
	food    Point
	hasFood bool
	input   InputBuffer

	score          int
	highScore      int
	interval       time.Duration
	elapsedSeconds int
	session        *SessionClock

	tickTask  *Task
	clockTask *Task
	frameTask *Task

	particles *ParticleSystem
	spawner   *Spawner
	frame     Frame

	initialized bool
}

// New creates an engine in the Idle phase
func New(opts Options) *Engine {
	cfg := opts.Config
	if cfg.Grid.Width <= 0 || cfg.Grid.Height <= 0 {
		cfg = DefaultConfig()
	}

	loop := opts.Loop
	if loop == nil {
		tp := opts.Time
		if tp == nil {
			tp = NewMonotonicTimeProvider()
		}
		loop = NewLoop(tp)
	}

	rng := opts.Rand
	if rng == nil {
		seed := uint64(loop.TimeProvider().Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}

	store := opts.Store
	if store == nil {
		store = NewMemoryScoreStore(0)
	}

	queue := NewEventQueue()
	e := &Engine{
		cfg:       cfg,
		loop:      loop,
		rng:       rng,
		store:     store,
		loader:    opts.Assets,
		queue:     queue,
		router:    NewEventRouter(queue),
		phase:     PhaseIdle,
		interval:  cfg.InitialInterval,
		session:   NewSessionClock(loop.TimeProvider()),
		particles: NewParticleSystem(rng),
		spawner:   NewSpawner(cfg.Grid, rng),
		snake:     NewSnake(cfg.SpawnHead, DirRight, cfg.InitialLength),
	}
	e.input.Reset(DirRight)

	e.assets[AssetHeadSprite] = &Asset{ID: AssetHeadSprite, Path: cfg.HeadSpritePath}
	e.assets[AssetFoodSprite] = &Asset{ID: AssetFoodSprite, Path: cfg.FoodSpritePath}

	e.tickTask = loop.NewTask(e.dispatching(e.tick))
	e.clockTask = loop.NewTask(e.dispatching(e.clockTick))
	e.frameTask = loop.NewTask(e.dispatching(e.refresh))

	return e
}

// Init binds the renderer and observers, loads the high score, starts asset
// loading and the perpetual display refresh, then draws the idle frame
func (e *Engine) Init(renderer FrameRenderer, handlers ...EventHandler) error {
	if e.initialized {
		return ErrAlreadyInitialized
	}
	e.initialized = true
	e.renderer = renderer
	for _, h := range handlers {
		e.router.Register(h)
	}

	e.highScore = e.loadHighScore()
	e.push(EventScoreChanged, ScorePayload{Score: e.score, HighScore: e.highScore})

	e.loadAssets()
	e.frameTask.Reset(e.cfg.FrameInterval)
	e.render()
	e.router.DispatchAll()
	return nil
}

// Subscribe registers an additional observer
func (e *Engine) Subscribe(h EventHandler) {
	e.router.Register(h)
}

// Start begins or restarts a session
func (e *Engine) Start() {
	if !e.phase.CanTransition(PhaseRunning) {
		return
	}

	e.snake = NewSnake(e.cfg.SpawnHead, DirRight, e.cfg.InitialLength)
	e.input.Reset(DirRight)
	e.score = 0
	e.interval = e.cfg.InitialInterval
	e.elapsedSeconds = 0
	e.session.Start()
	e.food, e.hasFood = e.spawner.Place(e.snake)

	e.phase = PhaseRunning
	e.started = true
	e.tickTask.Reset(e.interval)
	e.clockTask.Reset(e.cfg.ElapsedInterval)

	e.push(EventScoreChanged, ScorePayload{Score: e.score, HighScore: e.highScore})
	e.push(EventTimeChanged, TimePayload{ElapsedSeconds: 0})
	e.push(EventGameStarted, nil)

	e.render()
	e.router.DispatchAll()
}

// Pause toggles Running <-> Paused, no-op in other phases
func (e *Engine) Pause() {
	switch e.phase {
	case PhaseRunning:
		e.phase = PhasePaused
		e.tickTask.Stop()
		e.clockTask.Stop()
		e.session.Pause()
		e.push(EventPauseToggled, PausePayload{Paused: true})

	case PhasePaused:
		e.session.Resume()
		e.phase = PhaseRunning
		e.tickTask.Reset(e.interval)
		e.clockTask.Reset(e.cfg.ElapsedInterval)
		e.push(EventPauseToggled, PausePayload{Paused: false})

	default:
		return
	}

	e.render()
	e.router.DispatchAll()
}

// SetDirection buffers d for the next tick, returns whether it was accepted
// Ignored unless Running, reversals of the current direction are dropped
func (e *Engine) SetDirection(d Direction) bool {
	if e.phase != PhaseRunning {
		return false
	}
	return e.input.Request(d)
}

// SetDirectionName parses and buffers a direction name
func (e *Engine) SetDirectionName(name string) error {
	d, ok := ParseDirection(name)
	if !ok {
		return ErrInvalidDirection
	}
	e.SetDirection(d)
	return nil
}

// State returns the externally visible snapshot
func (e *Engine) State() Snapshot {
	return Snapshot{
		Running:        e.phase == PhaseRunning || e.phase == PhasePaused,
		Paused:         e.phase == PhasePaused,
		Score:          e.score,
		HighScore:      e.highScore,
		ElapsedSeconds: e.elapsedSeconds,
		Phase:          e.phase,
		Interval:       e.interval.Milliseconds(),
		Length:         e.snake.Len(),
	}
}

// Phase returns the current state machine position
func (e *Engine) Phase() Phase {
	return e.phase
}

// Loop returns the loop driving this engine
func (e *Engine) Loop() *Loop {
	return e.loop
}

// Snake returns the current body, head first
func (e *Engine) Snake() []Point {
	return e.snake.Segments()
}

// Food returns the food cell, ok is false when none is placed
func (e *Engine) Food() (Point, bool) {
	return e.food, e.hasFood
}

// Direction returns the effective direction of the last tick
func (e *Engine) Direction() Direction {
	return e.input.Current()
}

// Interval returns the current tick interval
func (e *Engine) Interval() time.Duration {
	return e.interval
}

// Particles returns the live particle count
func (e *Engine) Particles() int {
	return e.particles.Len()
}

// Asset returns the load state holder for id
func (e *Engine) Asset(id AssetID) *Asset {
	if id >= assetCount {
		return nil
	}
	return e.assets[id]
}

// Close stops every task, the engine can no longer run
func (e *Engine) Close() {
	e.tickTask.Stop()
	e.clockTask.Stop()
	e.frameTask.Stop()
}

// tick is one simulation step
func (e *Engine) tick() {
	if e.phase != PhaseRunning {
		return
	}

	dir := e.input.Commit()
	head := e.snake.Head().Add(dir)

	if c := CheckCollision(e.cfg.Grid, e.snake, head); c != CollisionNone {
		e.end(c.String())
		return
	}

	e.snake.PushHead(head)

	if e.hasFood && head == e.food {
		e.eat(head)
		if !e.hasFood {
			e.end("board full")
			return
		}
	} else {
		e.snake.PopTail()
	}

	e.render()
}

// eat applies every food consequence, the tail is kept so the snake grows
func (e *Engine) eat(cell Point) {
	cx, cy := e.cfg.Grid.CellCenter(cell)
	e.particles.Burst(cx, cy)

	e.score += e.cfg.Reward
	if e.score > e.highScore {
		e.highScore = e.score
		e.saveHighScore()
	}
	e.push(EventScoreChanged, ScorePayload{Score: e.score, HighScore: e.highScore})

	e.food, e.hasFood = e.spawner.Place(e.snake)

	e.interval = e.cfg.NextInterval(e.interval)
	e.tickTask.Reset(e.interval)

	e.push(EventFoodEaten, FoodPayload{Cell: cell, Interval: e.interval.Milliseconds()})
}

// clockTick publishes elapsed seconds from the pause-adjusted session clock
func (e *Engine) clockTick() {
	if e.phase != PhaseRunning {
		return
	}
	e.elapsedSeconds = e.session.ElapsedSeconds()
	e.push(EventTimeChanged, TimePayload{ElapsedSeconds: e.elapsedSeconds})
}

// refresh is the per-display-refresh pass, runs in every phase
func (e *Engine) refresh() {
	e.particles.Update()
	e.render()
}

// end performs the Running -> Ended transition
func (e *Engine) end(reason string) {
	e.phase = PhaseEnded
	e.tickTask.Stop()
	e.clockTask.Stop()
	e.session.Stop()

	log.Printf("game over (%s): score=%d elapsed=%ds", reason, e.score, e.elapsedSeconds)

	e.render()
	e.push(EventGameEnded, GameOverPayload{Score: e.score, ElapsedSeconds: e.elapsedSeconds})
}

func (e *Engine) render() {
	if e.renderer == nil {
		return
	}

	f := &e.frame
	f.Grid = e.cfg.Grid
	f.Phase = e.phase
	f.Started = e.started
	f.Snake = f.Snake[:0]
	for i := 0; i < e.snake.Len(); i++ {
		f.Snake = append(f.Snake, e.snake.Segment(i))
	}
	f.Direction = e.input.Current()
	f.Food = e.food
	f.HasFood = e.hasFood && e.started
	f.Particles = e.particles.Particles()
	f.HeadSprite = e.assets[AssetHeadSprite]
	f.FoodSprite = e.assets[AssetFoodSprite]
	f.Score = e.score
	f.HighScore = e.highScore
	f.ElapsedSeconds = e.elapsedSeconds

	e.renderer.RenderFrame(f)
}

func (e *Engine) push(t EventType, payload any) {
	e.queue.Push(GameEvent{Type: t, Payload: payload})
}

// dispatching wraps a task body so its events reach observers after it completes
func (e *Engine) dispatching(fn func()) func() {
	return func() {
		fn()
		e.router.DispatchAll()
	}
}

func (e *Engine) loadHighScore() int {
	hs, err := e.store.LoadHighScore()
	if err != nil {
		log.Printf("high score unavailable, using 0: %v", err)
		return 0
	}
	if hs < 0 {
		log.Printf("high score %d invalid, using 0", hs)
		return 0
	}
	return hs
}

func (e *Engine) saveHighScore() {
	if err := e.store.SaveHighScore(e.highScore); err != nil {
		log.Printf("failed to persist high score %d: %v", e.highScore, err)
	}
}
