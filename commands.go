package ljmd

type Commands struct {
	app *App
}

type pendingAdd struct {
	eid        EntityId
	components []any
}

// FlushCommands applies every entity spawn queued through Commands since the
// last flush. The App calls this at every stage boundary so a stage never
// observes a half-spawned entity from the stage before it. Atoms are
// spawned once at setup and never change composition or disappear during a
// run, so spawning is the only mutation this pipeline ever defers.
func (app *App) FlushCommands() {
	for _, add := range app.pendingAdditions {
		app.ecs.insertEntity(add.eid, add.components...)
	}
	app.pendingAdditions = app.pendingAdditions[:0]
}

func (cmd *Commands) AddResources(resources ...any) *Commands {
	cmd.app.addResources(resources...)
	return cmd
}

func (cmd *Commands) AddEntity(components ...any) EntityId {
	eid := cmd.app.ecs.nextEntityId()
	cmd.app.pendingAdditions = append(cmd.app.pendingAdditions, pendingAdd{
		eid:        eid,
		components: components,
	})
	return eid
}

func (cmd *Commands) GetAllComponents(entityId EntityId) []any {
	ecs := cmd.app.ecs
	archId := ecs.entityIndex[entityId]
	arch := ecs.archetypes[archId]

	row := arch.entities[entityId]

	var res []any
	for _, componentsSlice := range arch.componentData {
		val := reflectSliceGet(componentsSlice, int(row))
		res = append(res, val.Interface())
	}
	return res
}
