package controller

import (
	"context"
	"time"

	"github.com/ujenziiq/ujenziiq-go/internal/constant"
	"github.com/ujenziiq/ujenziiq-go/internal/model"
)

// Response shapes nest shallow user references and derived attributes the
// stored rows don't carry. List and detail shapes differ on purpose: lists
// stay slim, details embed the project's owned collections.

func usersToMini(users []model.User) []model.UserMini {
	minis := make([]model.UserMini, 0, len(users))
	for _, u := range users {
		minis = append(minis, u.Mini())
	}
	return minis
}

type TaskListItem struct {
	ID        string                `json:"id"`
	Name      string                `json:"name"`
	Status    constant.TaskStatus   `json:"status"`
	Priority  constant.TaskPriority `json:"priority"`
	StartDate time.Time             `json:"start_date"`
	DueDate   time.Time             `json:"due_date"`
	Assignees []model.UserMini      `json:"assignees"`
}

func toTaskListItem(t model.Task) TaskListItem {
	return TaskListItem{
		ID:        t.ID,
		Name:      t.Name,
		Status:    t.Status,
		Priority:  t.Priority,
		StartDate: t.StartDate,
		DueDate:   t.DueDate,
		Assignees: usersToMini(t.Assignees),
	}
}

func toTaskListItems(tasks []model.Task) []TaskListItem {
	items := make([]TaskListItem, 0, len(tasks))
	for _, t := range tasks {
		items = append(items, toTaskListItem(t))
	}
	return items
}

type TaskDetail struct {
	model.Task
	Assignees    []model.UserMini `json:"assignees"`
	Dependencies []string         `json:"dependencies"`
}

func toTaskDetail(t model.Task) TaskDetail {
	dependencyIds := make([]string, 0, len(t.Dependencies))
	for _, dep := range t.Dependencies {
		dependencyIds = append(dependencyIds, dep.ID)
	}

	return TaskDetail{
		Task:         t,
		Assignees:    usersToMini(t.Assignees),
		Dependencies: dependencyIds,
	}
}

type MaterialItem struct {
	model.Material
	Supplier *model.UserMini `json:"supplier"`
}

func toMaterialItem(m model.Material) MaterialItem {
	return MaterialItem{Material: m, Supplier: m.Supplier.MiniPtr()}
}

type ResourceAllocationItem struct {
	model.ResourceAllocation
	Material        MaterialItem `json:"material"`
	IsFullyReceived bool         `json:"is_fully_received"`
}

func toResourceAllocationItem(ra model.ResourceAllocation) ResourceAllocationItem {
	return ResourceAllocationItem{
		ResourceAllocation: ra,
		Material:           toMaterialItem(ra.Material),
		IsFullyReceived:    ra.IsFullyReceived(),
	}
}

func toResourceAllocationItems(ras []model.ResourceAllocation) []ResourceAllocationItem {
	items := make([]ResourceAllocationItem, 0, len(ras))
	for _, ra := range ras {
		items = append(items, toResourceAllocationItem(ra))
	}
	return items
}

type ProjectImageItem struct {
	model.ProjectImage
	UploadedBy *model.UserMini `json:"uploaded_by"`
	Url        string          `json:"url"`
}

// toProjectImageItem resolves a presigned URL per image; a failed presign
// leaves the url empty rather than failing the whole response.
func (b *baseController) toProjectImageItem(ctx context.Context, img model.ProjectImage) ProjectImageItem {
	url, err := img.ToPresignedUrl(ctx, b.app.S3)
	if err != nil {
		b.app.Logger.Errorf("Failed to presign image %s: %v", img.ID, err)
		url = ""
	}

	return ProjectImageItem{
		ProjectImage: img,
		UploadedBy:   img.UploadedBy.MiniPtr(),
		Url:          url,
	}
}

func (b *baseController) toProjectImageItems(ctx context.Context, imgs []model.ProjectImage) []ProjectImageItem {
	items := make([]ProjectImageItem, 0, len(imgs))
	for _, img := range imgs {
		items = append(items, b.toProjectImageItem(ctx, img))
	}
	return items
}

type SafetyItem struct {
	model.Safety
	ReportedBy *model.UserMini    `json:"reported_by"`
	AssignedTo *model.UserMini    `json:"assigned_to"`
	Images     []ProjectImageItem `json:"images"`
}

func (b *baseController) toSafetyItem(ctx context.Context, s model.Safety) SafetyItem {
	return SafetyItem{
		Safety:     s,
		ReportedBy: s.ReportedBy.MiniPtr(),
		AssignedTo: s.AssignedTo.MiniPtr(),
		Images:     b.toProjectImageItems(ctx, s.Images),
	}
}

func (b *baseController) toSafetyItems(ctx context.Context, incidents []model.Safety) []SafetyItem {
	items := make([]SafetyItem, 0, len(incidents))
	for _, s := range incidents {
		items = append(items, b.toSafetyItem(ctx, s))
	}
	return items
}

type ProgressReportItem struct {
	model.ProgressReport
	SubmittedBy    *model.UserMini    `json:"submitted_by"`
	TasksCompleted []TaskListItem     `json:"tasks_completed"`
	Images         []ProjectImageItem `json:"images"`
}

func (b *baseController) toProgressReportItem(ctx context.Context, pr model.ProgressReport) ProgressReportItem {
	return ProgressReportItem{
		ProgressReport: pr,
		SubmittedBy:    pr.SubmittedBy.MiniPtr(),
		TasksCompleted: toTaskListItems(pr.TasksCompleted),
		Images:         b.toProjectImageItems(ctx, pr.Images),
	}
}

func (b *baseController) toProgressReportItems(ctx context.Context, reports []model.ProgressReport) []ProgressReportItem {
	items := make([]ProgressReportItem, 0, len(reports))
	for _, pr := range reports {
		items = append(items, b.toProgressReportItem(ctx, pr))
	}
	return items
}

type ProjectListItem struct {
	ID                   string                 `json:"id"`
	Name                 string                 `json:"name"`
	Slug                 string                 `json:"slug"`
	ProjectType          constant.ProjectType   `json:"project_type"`
	Location             string                 `json:"location"`
	StartDate            time.Time              `json:"start_date"`
	ExpectedEnd          time.Time              `json:"expected_end_date"`
	Status               constant.ProjectStatus `json:"status"`
	Budget               float64                `json:"budget"`
	Client               *model.UserMini        `json:"client"`
	ProjectManager       *model.UserMini        `json:"project_manager"`
	CompletionPercentage int                    `json:"completion_percentage"`
	IsDelayed            bool                   `json:"is_delayed"`
}

func projectCompletion(tasks []model.Task) int {
	var completed int64
	for _, t := range tasks {
		if t.Status == constant.TaskStatusCompleted {
			completed++
		}
	}
	return model.CompletionPercentage(completed, int64(len(tasks)))
}

func toProjectListItem(p model.Project) ProjectListItem {
	return ProjectListItem{
		ID:                   p.ID,
		Name:                 p.Name,
		Slug:                 p.Slug,
		ProjectType:          p.ProjectType,
		Location:             p.Location,
		StartDate:            p.StartDate,
		ExpectedEnd:          p.ExpectedEnd,
		Status:               p.Status,
		Budget:               p.Budget,
		Client:               p.Client.MiniPtr(),
		ProjectManager:       p.ProjectManager.MiniPtr(),
		CompletionPercentage: projectCompletion(p.Tasks),
		IsDelayed:            p.IsDelayed(time.Now()),
	}
}

func toProjectListItems(projects []model.Project) []ProjectListItem {
	items := make([]ProjectListItem, 0, len(projects))
	for _, p := range projects {
		items = append(items, toProjectListItem(p))
	}
	return items
}

type ProjectDetail struct {
	model.Project
	Client               *model.UserMini          `json:"client"`
	ProjectManager       *model.UserMini          `json:"project_manager"`
	TeamMembers          []model.UserMini         `json:"team_members"`
	Tasks                []TaskListItem           `json:"tasks"`
	ResourceAllocations  []ResourceAllocationItem `json:"resource_allocations"`
	SafetyIncidents      []SafetyItem             `json:"safety_incidents"`
	Images               []ProjectImageItem       `json:"images"`
	ProgressReports      []ProgressReportItem     `json:"progress_reports"`
	CompletionPercentage int                      `json:"completion_percentage"`
	IsDelayed            bool                     `json:"is_delayed"`
}

func (b *baseController) toProjectDetail(ctx context.Context, p *model.Project) ProjectDetail {
	return ProjectDetail{
		Project:              *p,
		Client:               p.Client.MiniPtr(),
		ProjectManager:       p.ProjectManager.MiniPtr(),
		TeamMembers:          usersToMini(p.TeamMembers),
		Tasks:                toTaskListItems(p.Tasks),
		ResourceAllocations:  toResourceAllocationItems(p.ResourceAllocations),
		SafetyIncidents:      b.toSafetyItems(ctx, p.SafetyIncidents),
		Images:               b.toProjectImageItems(ctx, p.Images),
		ProgressReports:      b.toProgressReportItems(ctx, p.ProgressReports),
		CompletionPercentage: projectCompletion(p.Tasks),
		IsDelayed:            p.IsDelayed(time.Now()),
	}
}

type NotificationItem struct {
	model.Notification
	User *model.UserMini `json:"user"`
}

func toNotificationItems(notifications []model.Notification) []NotificationItem {
	items := make([]NotificationItem, 0, len(notifications))
	for _, n := range notifications {
		items = append(items, NotificationItem{Notification: n, User: n.User.MiniPtr()})
	}
	return items
}

type MessageItem struct {
	model.Message
	Sender    *model.UserMini `json:"sender"`
	Recipient *model.UserMini `json:"recipient"`
}

func toMessageItem(m model.Message) MessageItem {
	return MessageItem{Message: m, Sender: m.Sender.MiniPtr(), Recipient: m.Recipient.MiniPtr()}
}

func toMessageItems(messages []model.Message) []MessageItem {
	items := make([]MessageItem, 0, len(messages))
	for _, m := range messages {
		items = append(items, toMessageItem(m))
	}
	return items
}

type SMSLogItem struct {
	model.SMSLog
	User *model.UserMini `json:"user"`
}

func toSMSLogItems(logs []model.SMSLog) []SMSLogItem {
	items := make([]SMSLogItem, 0, len(logs))
	for _, l := range logs {
		items = append(items, SMSLogItem{SMSLog: l, User: l.User.MiniPtr()})
	}
	return items
}
