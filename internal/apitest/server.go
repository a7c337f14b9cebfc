// Package apitest provides an in-memory Tasklight API double for tests.
// It implements the task endpoint surface with real routing and JSON
// bodies so client and CLI tests can run full request cycles without a
// live server.
package apitest

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tasklight/tasklight-go/pkg/tasklight"
)

// Server is a fake Tasklight server backed by in-memory state. All state
// access is guarded by a single mutex; handlers are safe for concurrent
// requests.
type Server struct {
	*httptest.Server

	// Token, when non-empty, is required on every request: either as
	// "Authorization: Bearer <token>" or as "X-API-Token: <token>".
	Token string

	mu          sync.Mutex
	nextID      int64
	tasks       map[int64]*tasklight.Task
	assignees   map[int64][]tasklight.User
	labels      map[int64][]tasklight.Label
	comments    map[int64]map[int64]*tasklight.TaskComment
	relations   map[int64][]tasklight.TaskRelation
	attachments map[int64]map[int64][]byte
	requests    int
}

// New starts a fake server that requires the given token. It is shut down
// automatically when the test finishes.
func New(t testing.TB, token string) *Server {
	t.Helper()

	s := &Server{
		Token:       token,
		nextID:      1,
		tasks:       make(map[int64]*tasklight.Task),
		assignees:   make(map[int64][]tasklight.User),
		labels:      make(map[int64][]tasklight.Label),
		comments:    make(map[int64]map[int64]*tasklight.TaskComment),
		relations:   make(map[int64][]tasklight.TaskRelation),
		attachments: make(map[int64]map[int64][]byte),
	}
	s.Server = httptest.NewServer(s.router())
	t.Cleanup(s.Server.Close)
	return s
}

// Requests returns the number of requests the server has handled.
func (s *Server) Requests() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests
}

// SeedTask inserts a task directly into the store and returns it.
func (s *Server) SeedTask(title string, projectID int64) *tasklight.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	task := &tasklight.Task{
		ID:        s.nextID,
		Title:     title,
		ProjectID: projectID,
		Created:   time.Now(),
		Updated:   time.Now(),
	}
	s.nextID++
	s.tasks[task.ID] = task
	return task
}

func (s *Server) router() http.Handler {
	r := chi.NewRouter()
	r.Use(s.countRequests)
	r.Use(s.requireToken)

	r.Get("/tasks", s.listTasks)
	r.Post("/tasks/bulk", s.bulkUpdate)

	r.Route("/projects/{projectID}", func(r chi.Router) {
		r.Get("/tasks", s.listProjectTasks)
		r.Put("/tasks", s.createTask)
	})

	r.Route("/tasks/{taskID}", func(r chi.Router) {
		r.Get("/", s.getTask)
		r.Post("/", s.updateTask)
		r.Delete("/", s.deleteTask)
		r.Post("/done", s.markDone)
		r.Post("/undone", s.markUndone)

		r.Get("/assignees", s.listAssignees)
		r.Put("/assignees", s.addAssignee)
		r.Post("/assignees/bulk", s.bulkAssign)
		r.Delete("/assignees/{userID}", s.removeAssignee)

		r.Get("/labels", s.listLabels)
		r.Put("/labels", s.addLabel)
		r.Post("/labels/bulk", s.bulkLabels)
		r.Delete("/labels/{labelID}", s.removeLabel)

		r.Get("/comments", s.listComments)
		r.Put("/comments", s.createComment)
		r.Get("/comments/{commentID}", s.getComment)
		r.Post("/comments/{commentID}", s.updateComment)
		r.Delete("/comments/{commentID}", s.deleteComment)

		r.Put("/relations", s.createRelation)
		r.Delete("/relations/{kind}/{otherID}", s.deleteRelation)

		r.Get("/attachments", s.listAttachments)
		r.Put("/attachments", s.uploadAttachment)
		r.Get("/attachments/{attachmentID}", s.downloadAttachment)
		r.Delete("/attachments/{attachmentID}", s.deleteAttachment)
	})

	return r
}

func (s *Server) countRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests++
		s.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (s *Server) requireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.Token == "" {
			next.ServeHTTP(w, r)
			return
		}
		if r.Header.Get("Authorization") == "Bearer "+s.Token ||
			r.Header.Get("X-API-Token") == s.Token {
			next.ServeHTTP(w, r)
			return
		}
		writeError(w, http.StatusUnauthorized, "missing or invalid token")
	})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]interface{}{
		"code":    status,
		"message": message,
	})
}

func writeMessage(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, tasklight.Message{Message: message})
}

func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	return id, err == nil
}

func (s *Server) taskFromPath(w http.ResponseWriter, r *http.Request) (*tasklight.Task, bool) {
	id, ok := pathID(r, "taskID")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid task ID")
		return nil, false
	}
	task, ok := s.tasks[id]
	if !ok {
		writeError(w, http.StatusNotFound, "task does not exist")
		return nil, false
	}
	return task, true
}

// --- tasks ---

func (s *Server) listTasks(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	search := r.URL.Query().Get("s")
	var tasks []tasklight.Task
	for _, task := range s.tasks {
		if search != "" && !strings.Contains(strings.ToLower(task.Title), strings.ToLower(search)) {
			continue
		}
		tasks = append(tasks, *task)
	}
	if tasks == nil {
		tasks = []tasklight.Task{}
	}
	writeJSON(w, http.StatusOK, tasks)
}

func (s *Server) listProjectTasks(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	projectID, ok := pathID(r, "projectID")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid project ID")
		return
	}

	tasks := []tasklight.Task{}
	for _, task := range s.tasks {
		if task.ProjectID == projectID {
			tasks = append(tasks, *task)
		}
	}
	writeJSON(w, http.StatusOK, tasks)
}

func (s *Server) createTask(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	projectID, ok := pathID(r, "projectID")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid project ID")
		return
	}

	var task tasklight.Task
	if err := json.NewDecoder(r.Body).Decode(&task); err != nil {
		writeError(w, http.StatusBadRequest, "invalid task body")
		return
	}
	if task.Title == "" {
		writeError(w, http.StatusBadRequest, "task title is required")
		return
	}

	task.ID = s.nextID
	s.nextID++
	task.ProjectID = projectID
	task.Created = time.Now()
	task.Updated = task.Created
	s.tasks[task.ID] = &task
	writeJSON(w, http.StatusCreated, task)
}

func (s *Server) getTask(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.taskFromPath(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, task)
}

func (s *Server) updateTask(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.taskFromPath(w, r)
	if !ok {
		return
	}

	var updated tasklight.Task
	if err := json.NewDecoder(r.Body).Decode(&updated); err != nil {
		writeError(w, http.StatusBadRequest, "invalid task body")
		return
	}
	updated.ID = task.ID
	updated.ProjectID = task.ProjectID
	updated.Created = task.Created
	updated.Updated = time.Now()
	s.tasks[task.ID] = &updated
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) deleteTask(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.taskFromPath(w, r)
	if !ok {
		return
	}
	delete(s.tasks, task.ID)
	writeMessage(w, "Successfully deleted.")
}

func (s *Server) markDone(w http.ResponseWriter, r *http.Request) {
	s.setDone(w, r, true)
}

func (s *Server) markUndone(w http.ResponseWriter, r *http.Request) {
	s.setDone(w, r, false)
}

func (s *Server) setDone(w http.ResponseWriter, r *http.Request, done bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.taskFromPath(w, r)
	if !ok {
		return
	}
	task.Done = done
	if done {
		now := time.Now()
		task.DoneAt = &now
	} else {
		task.DoneAt = nil
	}
	task.Updated = time.Now()
	writeJSON(w, http.StatusOK, task)
}

func (s *Server) bulkUpdate(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var op tasklight.TaskBulkOperation
	if err := json.NewDecoder(r.Body).Decode(&op); err != nil {
		writeError(w, http.StatusBadRequest, "invalid bulk operation")
		return
	}

	for _, id := range op.TaskIDs {
		task, ok := s.tasks[id]
		if !ok {
			writeError(w, http.StatusNotFound, "task does not exist")
			return
		}
		switch op.Field {
		case "done":
			done, _ := op.Value.(bool)
			task.Done = done
		case "priority":
			// JSON numbers decode as float64
			if priority, ok := op.Value.(float64); ok {
				task.Priority = int(priority)
			}
		case "title":
			if title, ok := op.Value.(string); ok {
				task.Title = title
			}
		default:
			writeError(w, http.StatusBadRequest, "unsupported bulk field")
			return
		}
		task.Updated = time.Now()
	}
	writeMessage(w, "Tasks updated")
}

// --- assignees ---

func (s *Server) listAssignees(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.taskFromPath(w, r)
	if !ok {
		return
	}
	users := s.assignees[task.ID]
	if users == nil {
		users = []tasklight.User{}
	}
	writeJSON(w, http.StatusOK, users)
}

func (s *Server) addAssignee(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.taskFromPath(w, r)
	if !ok {
		return
	}

	var req struct {
		UserID int64 `json:"user_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid assignee body")
		return
	}

	s.assignees[task.ID] = append(s.assignees[task.ID], tasklight.User{ID: req.UserID})
	writeJSON(w, http.StatusCreated, tasklight.TaskAssignment{
		TaskID:  task.ID,
		UserID:  req.UserID,
		Created: time.Now(),
	})
}

func (s *Server) bulkAssign(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.taskFromPath(w, r)
	if !ok {
		return
	}

	var req tasklight.BulkAssignees
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid bulk assignee body")
		return
	}
	for _, userID := range req.UserIDs {
		s.assignees[task.ID] = append(s.assignees[task.ID], tasklight.User{ID: userID})
	}
	writeMessage(w, "assignees added")
}

func (s *Server) removeAssignee(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.taskFromPath(w, r)
	if !ok {
		return
	}
	userID, ok := pathID(r, "userID")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid user ID")
		return
	}

	users := s.assignees[task.ID]
	for i, user := range users {
		if user.ID == userID {
			s.assignees[task.ID] = append(users[:i], users[i+1:]...)
			writeMessage(w, "assignee removed")
			return
		}
	}
	writeError(w, http.StatusNotFound, "user is not assigned")
}

// --- labels ---

func (s *Server) listLabels(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.taskFromPath(w, r)
	if !ok {
		return
	}
	labels := s.labels[task.ID]
	if labels == nil {
		labels = []tasklight.Label{}
	}
	writeJSON(w, http.StatusOK, labels)
}

func (s *Server) addLabel(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.taskFromPath(w, r)
	if !ok {
		return
	}

	var req struct {
		LabelID int64 `json:"label_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid label body")
		return
	}

	s.labels[task.ID] = append(s.labels[task.ID], tasklight.Label{ID: req.LabelID})
	writeJSON(w, http.StatusCreated, tasklight.TaskLabel{
		TaskID:  task.ID,
		LabelID: req.LabelID,
		Created: time.Now(),
	})
}

func (s *Server) bulkLabels(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.taskFromPath(w, r)
	if !ok {
		return
	}

	var req tasklight.LabelTaskBulk
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid bulk label body")
		return
	}

	labels := make([]tasklight.Label, 0, len(req.LabelIDs))
	for _, labelID := range req.LabelIDs {
		labels = append(labels, tasklight.Label{ID: labelID})
	}
	s.labels[task.ID] = labels
	writeJSON(w, http.StatusOK, req)
}

func (s *Server) removeLabel(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.taskFromPath(w, r)
	if !ok {
		return
	}
	labelID, ok := pathID(r, "labelID")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid label ID")
		return
	}

	labels := s.labels[task.ID]
	for i, label := range labels {
		if label.ID == labelID {
			s.labels[task.ID] = append(labels[:i], labels[i+1:]...)
			writeMessage(w, "label removed")
			return
		}
	}
	writeError(w, http.StatusNotFound, "label is not attached")
}

// --- comments ---

func (s *Server) listComments(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.taskFromPath(w, r)
	if !ok {
		return
	}
	comments := []tasklight.TaskComment{}
	for _, comment := range s.comments[task.ID] {
		comments = append(comments, *comment)
	}
	writeJSON(w, http.StatusOK, comments)
}

func (s *Server) createComment(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.taskFromPath(w, r)
	if !ok {
		return
	}

	var comment tasklight.TaskComment
	if err := json.NewDecoder(r.Body).Decode(&comment); err != nil {
		writeError(w, http.StatusBadRequest, "invalid comment body")
		return
	}

	comment.ID = s.nextID
	s.nextID++
	comment.Created = time.Now()
	comment.Updated = comment.Created
	if s.comments[task.ID] == nil {
		s.comments[task.ID] = make(map[int64]*tasklight.TaskComment)
	}
	s.comments[task.ID][comment.ID] = &comment
	writeJSON(w, http.StatusCreated, comment)
}

func (s *Server) commentFromPath(w http.ResponseWriter, r *http.Request, taskID int64) (*tasklight.TaskComment, bool) {
	commentID, ok := pathID(r, "commentID")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid comment ID")
		return nil, false
	}
	comment, ok := s.comments[taskID][commentID]
	if !ok {
		writeError(w, http.StatusNotFound, "comment does not exist")
		return nil, false
	}
	return comment, true
}

func (s *Server) getComment(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.taskFromPath(w, r)
	if !ok {
		return
	}
	comment, ok := s.commentFromPath(w, r, task.ID)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, comment)
}

func (s *Server) updateComment(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.taskFromPath(w, r)
	if !ok {
		return
	}
	comment, ok := s.commentFromPath(w, r, task.ID)
	if !ok {
		return
	}

	var updated tasklight.TaskComment
	if err := json.NewDecoder(r.Body).Decode(&updated); err != nil {
		writeError(w, http.StatusBadRequest, "invalid comment body")
		return
	}
	comment.Comment = updated.Comment
	comment.Updated = time.Now()
	writeJSON(w, http.StatusOK, comment)
}

func (s *Server) deleteComment(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.taskFromPath(w, r)
	if !ok {
		return
	}
	comment, ok := s.commentFromPath(w, r, task.ID)
	if !ok {
		return
	}
	delete(s.comments[task.ID], comment.ID)
	writeMessage(w, "comment deleted")
}

// --- relations ---

func (s *Server) createRelation(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.taskFromPath(w, r)
	if !ok {
		return
	}

	var relation tasklight.TaskRelation
	if err := json.NewDecoder(r.Body).Decode(&relation); err != nil {
		writeError(w, http.StatusBadRequest, "invalid relation body")
		return
	}
	relation.TaskID = task.ID
	relation.Created = time.Now()
	s.relations[task.ID] = append(s.relations[task.ID], relation)
	writeJSON(w, http.StatusCreated, relation)
}

func (s *Server) deleteRelation(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.taskFromPath(w, r)
	if !ok {
		return
	}
	otherID, ok := pathID(r, "otherID")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid task ID")
		return
	}
	kind := tasklight.RelationKind(chi.URLParam(r, "kind"))

	relations := s.relations[task.ID]
	for i, relation := range relations {
		if relation.OtherTaskID == otherID && relation.RelationKind == kind {
			s.relations[task.ID] = append(relations[:i], relations[i+1:]...)
			writeMessage(w, "relation deleted")
			return
		}
	}
	writeError(w, http.StatusNotFound, "relation does not exist")
}

// --- attachments ---

func (s *Server) listAttachments(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.taskFromPath(w, r)
	if !ok {
		return
	}
	attachments := []tasklight.TaskAttachment{}
	for id, content := range s.attachments[task.ID] {
		attachments = append(attachments, tasklight.TaskAttachment{
			ID:     id,
			TaskID: task.ID,
			File:   tasklight.AttachmentFile{Size: int64(len(content))},
		})
	}
	writeJSON(w, http.StatusOK, attachments)
}

func (s *Server) uploadAttachment(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.taskFromPath(w, r)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	files := r.MultipartForm.File["files"]
	if len(files) == 0 {
		writeError(w, http.StatusBadRequest, "no file in upload")
		return
	}

	f, err := files[0].Open()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to open upload")
		return
	}
	defer f.Close()
	content, err := io.ReadAll(f)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to read upload")
		return
	}

	id := s.nextID
	s.nextID++
	if s.attachments[task.ID] == nil {
		s.attachments[task.ID] = make(map[int64][]byte)
	}
	s.attachments[task.ID][id] = content

	writeJSON(w, http.StatusCreated, tasklight.TaskAttachment{
		ID:     id,
		TaskID: task.ID,
		File: tasklight.AttachmentFile{
			Name: files[0].Filename,
			Size: int64(len(content)),
		},
		Created: time.Now(),
	})
}

func (s *Server) downloadAttachment(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.taskFromPath(w, r)
	if !ok {
		return
	}
	id, ok := pathID(r, "attachmentID")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid attachment ID")
		return
	}
	content, ok := s.attachments[task.ID][id]
	if !ok {
		writeError(w, http.StatusNotFound, "attachment does not exist")
		return
	}
	w.Header().Set("Content-Type", "application/octet-stream")
	w.Write(content)
}

func (s *Server) deleteAttachment(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.taskFromPath(w, r)
	if !ok {
		return
	}
	id, ok := pathID(r, "attachmentID")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid attachment ID")
		return
	}
	if _, ok := s.attachments[task.ID][id]; !ok {
		writeError(w, http.StatusNotFound, "attachment does not exist")
		return
	}
	delete(s.attachments[task.ID], id)
	writeMessage(w, "attachment deleted")
}
