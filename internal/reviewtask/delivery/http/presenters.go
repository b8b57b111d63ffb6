package http

import (
	"review-task-board/internal/model"
	"review-task-board/internal/reviewtask"
	"review-task-board/internal/tagfilter"
	"review-task-board/pkg/tagquery"
)

// --- Request DTOs ---

type listReq struct {
	Policy string   `form:"policy"`
	Tags   []string `form:"-"` // decoded from the raw `tags` parameter
}

func (r listReq) validate() error {
	if _, err := tagfilter.ParsePolicy(r.Policy, tagfilter.DefaultPolicy); err != nil {
		return errInvalidPolicy
	}
	return nil
}

func (r listReq) toInput() reviewtask.ListTasksInput {
	// validate already rejected unknown policies
	policy, _ := tagfilter.ParsePolicy(r.Policy, "")
	return reviewtask.ListTasksInput{
		Tags:   r.Tags,
		Policy: policy,
	}
}

// ---

type addTagReq struct {
	TaskID int    `json:"-"` // populated from URI param
	Tag    string `json:"tag"`
}

// Blank tags are a silent no-op in the use case, so they pass validation.
func (r addTagReq) validate() error { return nil }

func (r addTagReq) toInput() reviewtask.AddTagInput {
	return reviewtask.AddTagInput{TaskID: r.TaskID, Tag: r.Tag}
}

// ---

type removeTagReq struct {
	TaskID int    `form:"-"`
	Tag    string `form:"tag"`
}

func (r removeTagReq) validate() error {
	if r.Tag == "" {
		return errInvalidTag
	}
	return nil
}

func (r removeTagReq) toInput() reviewtask.RemoveTagInput {
	return reviewtask.RemoveTagInput{TaskID: r.TaskID, Tag: r.Tag}
}

// --- Response DTOs ---

// TaskResp is the JSON shape of a Task.
type TaskResp struct {
	ID         int      `json:"id"`
	Name       string   `json:"name"`
	PaperTitle string   `json:"paper_title"`
	Authors    []string `json:"authors"`
	Tags       []string `json:"tags"`
	DueDate    string   `json:"due_date"`
}

// NewTaskResp converts a Task for JSON output. Exported for the board
// delivery layer, which embeds the visible tasks.
func NewTaskResp(t model.Task) TaskResp {
	authors := t.Authors
	if authors == nil {
		authors = []string{}
	}
	tags := t.Tags
	if tags == nil {
		tags = []string{}
	}
	return TaskResp{
		ID:         t.ID,
		Name:       t.Name,
		PaperTitle: t.PaperTitle,
		Authors:    authors,
		Tags:       tags,
		DueDate:    t.DueDate,
	}
}

// NewTaskRespList converts tasks, never returning nil.
func NewTaskRespList(tasks []model.Task) []TaskResp {
	out := make([]TaskResp, len(tasks))
	for i, t := range tasks {
		out[i] = NewTaskResp(t)
	}
	return out
}

type listResp struct {
	Tasks     []TaskResp `json:"tasks"`
	Count     int        `json:"count"`
	Total     int        `json:"total"`
	Selection []string   `json:"selection"`
	Policy    string     `json:"policy"`
	Query     string     `json:"query"`
}

func (h *handler) newListResp(out reviewtask.ListTasksOutput) listResp {
	sel := out.Selection
	if sel == nil {
		sel = []string{}
	}
	return listResp{
		Tasks:     NewTaskRespList(out.Tasks),
		Count:     len(out.Tasks),
		Total:     out.Total,
		Selection: sel,
		Policy:    out.Policy.String(),
		Query:     tagquery.RawQuery(out.Selection),
	}
}

type tagCountResp struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

type tagsResp struct {
	Tags []tagCountResp `json:"tags"`
}

func (h *handler) newTagsResp(out reviewtask.ListTagsOutput) tagsResp {
	tags := make([]tagCountResp, len(out.Tags))
	for i, tc := range out.Tags {
		tags[i] = tagCountResp{Tag: tc.Tag, Count: tc.Count}
	}
	return tagsResp{Tags: tags}
}

type detailResp struct {
	Task TaskResp `json:"task"`
}

func (h *handler) newDetailResp(out reviewtask.DetailTaskOutput) detailResp {
	return detailResp{Task: NewTaskResp(out.Task)}
}

type tagMutationResp struct {
	Task    *TaskResp `json:"task,omitempty"`
	Found   bool      `json:"found"`
	Changed bool      `json:"changed"`
}

func (h *handler) newTagMutationResp(out reviewtask.TagMutationOutput) tagMutationResp {
	resp := tagMutationResp{Found: out.Found, Changed: out.Changed}
	if out.Found {
		t := NewTaskResp(out.Task)
		resp.Task = &t
	}
	return resp
}
