package ljmd

import (
	"reflect"
)

// AppBuilder assembles an App from a set of Modules before the first Tick.
type AppBuilder struct {
	modules []Module
}

func NewAppBuilder() *AppBuilder {
	return &AppBuilder{}
}

func (b *AppBuilder) UseModule(module Module) *AppBuilder {
	b.modules = append(b.modules, module)
	return b
}

func (b *AppBuilder) UseModules(modules ...Module) *AppBuilder {
	b.modules = append(b.modules, modules...)
	return b
}

// Build constructs the App, registers the fixed MD stage schedule (see
// Stage orchestrator, schedule.go) and installs every module in order.
func (b *AppBuilder) Build() *App {
	ecs := MakeEcs()
	app := &App{
		resources:        make(map[reflect.Type]any),
		systemsStateless: make(map[string][]systemFn),
		ecs:              &ecs,
		modules:          append([]Module(nil), b.modules...),
	}

	for _, stage := range MDStages {
		app.stages = append(app.stages, stage)
		app.systemsStateless[stage.Name] = make([]systemFn, 0)
	}

	commands := &Commands{app: app}
	for _, module := range app.modules {
		module.Install(app, commands)
	}

	return app
}
