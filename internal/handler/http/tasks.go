package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-task-keeper/internal/app"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) addTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.addTask").Msg("no user ID in request context")
		utils.WriteMessage(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	var task models.Task
	if err := json.NewDecoder(r.Body).Decode(&task); err != nil {
		log.Err(err).Str("func", "*Handler.addTask").Msg("Invalid JSON was passed")
		utils.WriteMessage(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	// ownership comes from the token, whatever the body says
	task.UserID = userID
	task.ID = 0
	task.Completed = false

	if _, err := h.services.TaskService.AddTask(ctx, task); err != nil {
		log.Err(err).Str("func", "*Handler.addTask").Int64("user_id", userID).Msg("error adding task")
		utils.WriteMessage(w, messageFromError(err), statusFromError(err))
		return
	}

	utils.WriteMessage(w, app.MsgTaskAdded, http.StatusCreated)
}

func (h *Handler) getTasks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.getTasks").Msg("no user ID in request context")
		utils.WriteMessage(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	tasks, err := h.services.TaskService.GetTasks(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getTasks").Int64("user_id", userID).Msg("error getting tasks")
		utils.WriteMessage(w, messageFromError(err), statusFromError(err))
		return
	}

	utils.WriteJSON(w, tasks, http.StatusOK)
}

func (h *Handler) updateTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.updateTask").Msg("no user ID in request context")
		utils.WriteMessage(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	taskID, err := taskIDFromURL(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateTask").Msg("non-numeric task ID in URL")
		utils.WriteMessage(w, app.MsgTaskNotFound, http.StatusNotFound)
		return
	}

	var update models.TaskUpdate
	if err = json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Str("func", "*Handler.updateTask").Msg("Invalid JSON was passed")
		utils.WriteMessage(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	if _, err = h.services.TaskService.UpdateTask(ctx, userID, taskID, update); err != nil {
		log.Err(err).Str("func", "*Handler.updateTask").Int64("task_id", taskID).Msg("error updating task")
		utils.WriteMessage(w, messageFromError(err), statusFromError(err))
		return
	}

	utils.WriteMessage(w, app.MsgTaskUpdated, http.StatusOK)
}

func (h *Handler) deleteTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.deleteTask").Msg("no user ID in request context")
		utils.WriteMessage(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	taskID, err := taskIDFromURL(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.deleteTask").Msg("non-numeric task ID in URL")
		utils.WriteMessage(w, app.MsgTaskNotFound, http.StatusNotFound)
		return
	}

	if err = h.services.TaskService.DeleteTask(ctx, userID, taskID); err != nil {
		log.Err(err).Str("func", "*Handler.deleteTask").Int64("task_id", taskID).Msg("error deleting task")
		utils.WriteMessage(w, messageFromError(err), statusFromError(err))
		return
	}

	utils.WriteMessage(w, app.MsgTaskDeleted, http.StatusOK)
}

// taskIDFromURL parses the {id} chi URL parameter.
func taskIDFromURL(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
