package http

import (
	"context"

	"review-task-board/internal/board"
	"review-task-board/internal/model"
	taskHTTP "review-task-board/internal/reviewtask/delivery/http"
	"review-task-board/pkg/response"
)

// --- Request DTOs ---

type detailReq struct {
	ID     string `form:"-"`
	Policy string `form:"policy"`
}

func (r detailReq) validate() error {
	_, err := parsePolicy(r.Policy)
	return err
}

func (r detailReq) toInput() board.DetailInput {
	p, _ := parsePolicy(r.Policy)
	return board.DetailInput{ID: r.ID, Policy: p}
}

// ---

type toggleReq struct {
	ID  string `json:"-"`
	Tag string `json:"tag" binding:"required"`
}

func (r toggleReq) validate() error { return nil }

func (r toggleReq) toInput() board.ToggleInput {
	return board.ToggleInput{ID: r.ID, Tag: r.Tag}
}

// ---

type saveBookmarkReq struct {
	ID   string  `json:"-"`
	Name *string `json:"name"`
}

// RequestName answers the name prompt from the request body; a missing name
// is a cancelled prompt.
func (r saveBookmarkReq) RequestName(context.Context) (string, bool) {
	if r.Name == nil {
		return "", false
	}
	return *r.Name, true
}

func (r saveBookmarkReq) toInput() board.SaveBookmarkInput {
	return board.SaveBookmarkInput{ID: r.ID, Prompter: r}
}

// ---

type applyReq struct {
	ID         string
	Index      int
	BookmarkID string
}

func (r applyReq) toInput() board.ApplyBookmarkInput {
	return board.ApplyBookmarkInput{ID: r.ID, Index: r.Index, BookmarkID: r.BookmarkID}
}

// --- Response DTOs ---

type bookmarkResp struct {
	ID      string            `json:"id"`
	Index   int               `json:"index"`
	Name    string            `json:"name"`
	Tags    []string          `json:"tags"`
	SavedAt response.DateTime `json:"saved_at"`
}

func newBookmarkResp(i int, bm model.Bookmark) bookmarkResp {
	tags := bm.Tags
	if tags == nil {
		tags = []string{}
	}
	return bookmarkResp{
		ID:      bm.ID,
		Index:   i,
		Name:    bm.Name,
		Tags:    tags,
		SavedAt: response.DateTime(bm.SavedAt),
	}
}

func newBookmarkRespList(bms []model.Bookmark) []bookmarkResp {
	out := make([]bookmarkResp, len(bms))
	for i, bm := range bms {
		out[i] = newBookmarkResp(i, bm)
	}
	return out
}

type boardResp struct {
	ID        string            `json:"id"`
	Selection []string          `json:"selection"`
	Query     string            `json:"query"`
	Bookmarks []bookmarkResp    `json:"bookmarks"`
	CreatedAt response.DateTime `json:"created_at"`
	UpdatedAt response.DateTime `json:"updated_at"`
}

func newBoardResp(out board.Output) boardResp {
	sel := out.Board.Selection
	if sel == nil {
		sel = []string{}
	}
	return boardResp{
		ID:        out.Board.ID,
		Selection: sel,
		Query:     out.Query,
		Bookmarks: newBookmarkRespList(out.Board.Bookmarks),
		CreatedAt: response.DateTime(out.Board.CreatedAt),
		UpdatedAt: response.DateTime(out.Board.UpdatedAt),
	}
}

type boardOnlyResp struct {
	Board boardResp `json:"board"`
}

func (h *handler) newBoardOnlyResp(out board.Output) boardOnlyResp {
	return boardOnlyResp{Board: newBoardResp(out)}
}

type detailResp struct {
	Board  boardResp           `json:"board"`
	Tasks  []taskHTTP.TaskResp `json:"tasks"`
	Count  int                 `json:"count"`
	Total  int                 `json:"total"`
	Policy string              `json:"policy"`
}

func (h *handler) newDetailResp(out board.DetailOutput) detailResp {
	return detailResp{
		Board:  newBoardResp(out.Output),
		Tasks:  taskHTTP.NewTaskRespList(out.Tasks),
		Count:  len(out.Tasks),
		Total:  out.Total,
		Policy: out.Policy.String(),
	}
}

type saveBookmarkResp struct {
	Board    boardResp     `json:"board"`
	Bookmark *bookmarkResp `json:"bookmark,omitempty"`
	Saved    bool          `json:"saved"`
}

func (h *handler) newSaveBookmarkResp(out board.SaveBookmarkOutput) saveBookmarkResp {
	resp := saveBookmarkResp{Board: newBoardResp(out.Output), Saved: out.Saved}
	if out.Saved {
		bm := newBookmarkResp(len(out.Board.Bookmarks)-1, out.Bookmark)
		resp.Bookmark = &bm
	}
	return resp
}

type listBookmarksResp struct {
	Bookmarks []bookmarkResp `json:"bookmarks"`
}

func (h *handler) newListBookmarksResp(out board.ListBookmarksOutput) listBookmarksResp {
	return listBookmarksResp{Bookmarks: newBookmarkRespList(out.Bookmarks)}
}
