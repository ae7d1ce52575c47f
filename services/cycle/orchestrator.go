package cycle

import (
	"time"

	"envlogger-go/types"
	"envlogger-go/x/logx"
)

// Config aggregates the per-stage budgets and the wake interval. All
// fields are fixed at construction; nothing is reloaded at runtime.
type Config struct {
	Acquire  AcquireConfig
	Connect  ConnectConfig
	TimeSync TimeSyncConfig
	Report   ReportConfig

	WakeInterval time.Duration
	Yield        YieldFunc
}

// Collaborators are the external drivers the cycle sequences. Power
// may be nil; everything else is required.
type Collaborators struct {
	Sensor  Sensor
	Radio   Wireless
	Clock   TimeSource
	Upload  Uploader
	Power   Power
	Signal  Signaler
	Sleeper SleepScheduler
}

// Orchestrator runs the stages strictly in order, applies the
// fatal/non-fatal rule to each outcome, and always ends the cycle with
// radio teardown, the sleep-entry signal and exactly one sleep handoff.
// It owns no retry policy of its own.
type Orchestrator struct {
	cfg Config
	co  Collaborators

	acquire  *Acquisition
	connect  *Connectivity
	timesync *TimeSync
	report   *Report

	log logx.Logger
}

func New(cfg Config, co Collaborators) *Orchestrator {
	if cfg.WakeInterval <= 0 {
		cfg.WakeInterval = 5 * time.Minute
	}
	return &Orchestrator{
		cfg:      cfg,
		co:       co,
		acquire:  NewAcquisition(co.Sensor, cfg.Acquire, cfg.Yield),
		connect:  NewConnectivity(co.Radio, cfg.Connect, cfg.Yield),
		timesync: NewTimeSync(co.Clock, cfg.TimeSync, cfg.Yield),
		report:   NewReport(co.Upload, co.Clock, cfg.Report),
		log:      logx.New("cycle"),
	}
}

// RunCycle executes one wake cycle. A fatal stage failure (sensor
// init, association) short-circuits the pipeline after its signal;
// time-sync and upload failures degrade the cycle but never stop it.
// Sleep scheduling runs on every path. On real hardware the sleep
// handoff does not return; the result value exists for hosts and tests.
func (o *Orchestrator) RunCycle() CycleResult {
	o.log.Infof("wake, starting collection cycle")
	o.co.Signal.Signal(types.CondStartup)

	if o.co.Power != nil {
		o.co.Power.Trim()
	}

	agg, err := o.acquire.Run()
	if err != nil {
		o.log.Errorf("acquisition failed: %v", err)
		o.co.Signal.Signal(types.CondSensorFailure)
		return o.finish(CycleResult{Outcome: OutcomeSensorUnavailable})
	}

	o.co.Signal.Signal(types.CondConnecting)
	net := o.connect.Run()
	if net != ResConnected {
		o.co.Signal.Signal(failureCondition(net))
		return o.finish(CycleResult{Outcome: OutcomeNetworkUnavailable, Network: net})
	}
	o.co.Signal.Signal(types.CondConnected)

	if err := o.timesync.Run(); err != nil {
		o.log.Warnf("%v, continuing with system time", err)
	}

	res := CycleResult{Outcome: OutcomeCompleted}
	if err := o.report.Run(agg); err != nil {
		o.co.Signal.Signal(types.CondUploadFailure)
		res.Outcome = OutcomeUploadFailed
	}
	return o.finish(res)
}

// finish is the cycle's one exit: radio off, sleep-entry signal, and
// the sleep handoff with the fixed wake interval.
func (o *Orchestrator) finish(res CycleResult) CycleResult {
	o.co.Radio.DisconnectAndPowerDown()
	o.co.Signal.Signal(types.CondSleepEntry)
	o.log.Infof("cycle %s, sleeping for %v", res.Outcome, o.cfg.WakeInterval)
	o.co.Sleeper.ScheduleWake(o.cfg.WakeInterval)
	return res
}

// failureCondition picks the indicator pattern for a failed
// association. Generic failures reuse the no-AP pattern; there is no
// separate signature for them.
func failureCondition(r Result) types.Condition {
	if r == ResAuthFailed {
		return types.CondAuthFailure
	}
	return types.CondNoAccessPoint
}
