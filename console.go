package ljmd

// ConsoleModule installs a status-line reporter, reusing the run's
// DefaultLogger resource rather than writing to stdout directly.
type ConsoleModule struct {
	Stride uint64
}

func (m ConsoleModule) Install(app *App, cmd *Commands) {
	stride := m.Stride
	if stride == 0 {
		stride = 100
	}
	app.UseSystem(System(func(logger *DefaultLogger, clock *StepClock, temp *Temperature, count *ParticleCount) {
		consoleReportSystem(logger, clock, temp, count, stride)
	}).InStage(AnalysisFinalizeStage).RunAlways())
}

func consoleReportSystem(logger *DefaultLogger, clock *StepClock, temp *Temperature, count *ParticleCount, stride uint64) {
	if clock.Current%stride != 0 {
		return
	}
	logger.Infof("step=%d/%d N=%d T=%.4fK", clock.Current, clock.Total, count.N, temp.Value)
}
