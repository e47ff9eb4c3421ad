package jobs

import (
	"fmt"
)

type scheduled interface {
	Start() error
	Stop()
}

type namedJob struct {
	name string
	job  scheduled
}

// JobManager starts and stops the background jobs as a group.
type JobManager struct {
	jobs []namedJob
}

func NewJobManager(agentAssignmentJob *AgentAssignmentJob, restockReconciliationJob *RestockReconciliationJob) *JobManager {
	return &JobManager{
		jobs: []namedJob{
			{name: "agent assignment", job: agentAssignmentJob},
			{name: "restock reconciliation", job: restockReconciliationJob},
		},
	}
}

// StartAll starts the jobs in order. When one fails the jobs already running are
// stopped again.
func (jm *JobManager) StartAll() error {
	for i, j := range jm.jobs {
		if err := j.job.Start(); err != nil {
			jm.stop(jm.jobs[:i])
			return fmt.Errorf("failed to start %s job: %w", j.name, err)
		}
	}
	return nil
}

// StopAll stops the jobs in reverse start order and waits for running executions.
func (jm *JobManager) StopAll() {
	jm.stop(jm.jobs)
}

func (jm *JobManager) stop(started []namedJob) {
	for i := len(started) - 1; i >= 0; i-- {
		started[i].job.Stop()
	}
}
