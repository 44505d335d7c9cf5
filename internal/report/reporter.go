package report

import (
	"encoding/json"

	"elpais-opinion-parser/internal/observability"
)

// ScriptRunner — канал исполнения скриптов активной сессии,
// через который оркестрация получает статус прогона
type ScriptRunner interface {
	RunScript(payload string) error
}

type Reporter struct {
	runner ScriptRunner
	logger *observability.Logger
}

func NewReporter(runner ScriptRunner, logger *observability.Logger) *Reporter {
	return &Reporter{
		runner: runner,
		logger: logger,
	}
}

type sessionStatus struct {
	Action    string            `json:"action"`
	Arguments sessionStatusArgs `json:"arguments"`
}

type sessionStatusArgs struct {
	Status string `json:"status"`
	Reason string `json:"reason"`
}

// ReportPassed сообщает об успехе; причина — JSON повторяющихся слов
func (r *Reporter) ReportPassed(repeated map[string]int) {
	reason, err := json.Marshal(repeated)
	if err != nil {
		r.logger.Error("Failed to encode repeated words", "error", err.Error())
		reason = []byte("{}")
	}
	r.report("passed", string(reason))
}

// ReportFailed сообщает о провале; причина — текст ошибки
func (r *Reporter) ReportFailed(runErr error) {
	r.report("failed", runErr.Error())
}

// report отправляет статус. Ошибки отправки только логируются:
// они никогда не подменяют исход самого прогона.
func (r *Reporter) report(status, reason string) {
	payload, err := json.Marshal(sessionStatus{
		Action: "setSessionStatus",
		Arguments: sessionStatusArgs{
			Status: status,
			Reason: reason,
		},
	})
	if err != nil {
		r.logger.Error("Failed to encode session status", "error", err.Error())
		return
	}

	instruction := "browserstack_executor: " + string(payload)
	if err := r.runner.RunScript(instruction); err != nil {
		r.logger.Error("Failed to report session status",
			"status", status,
			"error", err.Error(),
		)
		return
	}

	r.logger.Info("Session status reported", "status", status)
}
