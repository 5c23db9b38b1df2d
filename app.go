package ljmd

import (
	"fmt"
	"reflect"
)

type systemFn = any

// App owns the component store, the resource table and the per-stage system
// schedule. A single App drives one simulation run: an MD run has no notion
// of game states (menu/playing/paused), so unlike the store this was
// adapted from, App only ever runs the stateless half of the schedule.
type App struct {
	stages           []Stage
	systemsStateless map[string][]systemFn

	resources map[reflect.Type]any
	ecs       *Ecs
	modules   []Module

	pendingAdditions []pendingAdd
}

// Module installs resources and systems into an App at build time.
type Module interface {
	Install(app *App, commands *Commands)
}

func (app *App) Commands() *Commands {
	return &Commands{app: app}
}

// Tick runs every stage, in order, exactly once. FlushCommands is applied
// between stages so deferred entity mutations are visible to the next stage,
// matching the stage-boundary memory fence the orchestrator relies on.
func (app *App) Tick() {
	app.FlushCommands()
	for _, stage := range app.stages {
		app.callStage(stage)
		app.FlushCommands()
	}
}

// Run ticks forever; most callers of this module run a fixed number of
// steps via Tick instead (see cmd/mdrun), since an MD run has a known length.
func (app *App) Run() {
	for {
		app.Tick()
	}
}

func (app *App) callStage(stage Stage) {
	for _, system := range app.systemsStateless[stage.Name] {
		app.callSystem(system)
	}
}

func (app *App) addResources(resources ...any) *App {
	for _, resource := range resources {
		resourceType := reflect.TypeOf(resource)
		if resourceType.Kind() != reflect.Pointer {
			panic(fmt.Sprintf("resource %s must be passed as a pointer", resourceType))
		}
		if _, ok := app.resources[resourceType.Elem()]; ok {
			panic(fmt.Sprintf("%s is already in resources", resourceType))
		}
		app.resources[resourceType.Elem()] = resource
	}
	return app
}

func (app *App) callSystem(system systemFn) {
	app.callSystemInternal(system)
}

var typeOfCommands = reflect.TypeOf(Commands{})

// callSystemInternal resolves a system function's arguments by reflection:
// a *Commands parameter is bound to this app, and any other pointer
// parameter is resolved against the resource table by its pointee type.
func (app *App) callSystemInternal(system systemFn) {
	systemType := reflect.TypeOf(system)
	systemValue := reflect.ValueOf(system)

	args := make([]reflect.Value, systemType.NumIn())

	for i := 0; i < systemType.NumIn(); i++ {
		argType := systemType.In(i)
		underlyingType := argType.Elem()

		if underlyingType == typeOfCommands {
			args[i] = reflect.ValueOf(&Commands{app: app})
		} else if resource, argIsResource := app.resources[underlyingType]; argIsResource {
			resourceVal := reflect.ValueOf(resource)
			args[i] = reflect.NewAt(underlyingType, resourceVal.UnsafePointer())
		} else {
			panic(fmt.Sprintf("unable to resolve system dependency %s for %s", argType, systemType))
		}
	}
	systemValue.Call(args)
}
