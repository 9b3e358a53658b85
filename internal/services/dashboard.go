package services

import (
	"time"

	"github.com/sitedesk/sitedesk/internal/models"
	"github.com/sitedesk/sitedesk/internal/query"
	"github.com/sitedesk/sitedesk/internal/store"
)

// DashboardService aggregates the overview numbers shown on the landing
// page. Everything is derived on demand from the live store.
type DashboardService struct {
	store    *store.Store
	schedule *ScheduleService
}

func NewDashboardService(st *store.Store, schedule *ScheduleService) *DashboardService {
	return &DashboardService{store: st, schedule: schedule}
}

// ProjectDeadline pairs a project with its remaining working days.
type ProjectDeadline struct {
	ProjectID    int64      `json:"project_id"`
	ProjectName  string     `json:"project_name"`
	EndDate      *time.Time `json:"end_date,omitempty"`
	WorkdaysLeft int        `json:"workdays_left"`
	Overdue      bool       `json:"overdue"`
}

type DashboardResponse struct {
	Projects  query.ProjectStats `json:"projects"`
	Pipeline  []query.StageStats `json:"pipeline"`
	Tasks     query.TaskStats    `json:"tasks"`
	Deadlines []ProjectDeadline  `json:"deadlines"`
	Unread    int                `json:"unread_notifications"`
}

// Overview computes the full dashboard payload.
func (s *DashboardService) Overview(now time.Time) *DashboardResponse {
	projects := s.store.Projects()

	resp := &DashboardResponse{
		Projects: query.ProjectStatsOf(projects),
		Pipeline: query.PipelineStats(s.store.Deals()),
		Tasks:    s.allTaskStats(projects, now),
	}

	for _, p := range projects {
		if p.EndDate == nil || p.Status == models.ProjectCompleted {
			continue
		}
		resp.Deadlines = append(resp.Deadlines, ProjectDeadline{
			ProjectID:    p.ID,
			ProjectName:  p.Name,
			EndDate:      p.EndDate,
			WorkdaysLeft: s.schedule.WorkdaysUntil(*p.EndDate, now),
			Overdue:      p.EndDate.Before(now),
		})
	}

	for _, n := range s.store.Notifications() {
		if !n.Read {
			resp.Unread++
		}
	}

	return resp
}

// ProjectTaskStats computes task stats for a single project.
func (s *DashboardService) ProjectTaskStats(projectID int64, now time.Time) query.TaskStats {
	return query.TaskStatsOf(s.store.TasksOf(projectID), now)
}

func (s *DashboardService) allTaskStats(projects []models.Project, now time.Time) query.TaskStats {
	var all []models.Task
	for _, p := range projects {
		all = append(all, p.Tasks...)
	}
	return query.TaskStatsOf(all, now)
}
