package controller

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pawz-connect/backend/internal/application/usecase/post"
	domainerror "github.com/pawz-connect/backend/internal/domain/error"
	"github.com/pawz-connect/backend/internal/integration/entrypoint/dto"
)

const (
	postEventName   = "post"
	readyEventName  = "ready"
	heartbeatPeriod = 25 * time.Second
)

// PostController handles feed, post, like and comment endpoints.
type PostController struct {
	feedUseCase         *post.GetFeedUseCase
	streamUseCase       *post.StreamFeedUseCase
	createUseCase       *post.CreatePostUseCase
	deleteUseCase       *post.DeletePostUseCase
	toggleLikeUseCase   *post.ToggleLikeUseCase
	addCommentUseCase   *post.AddCommentUseCase
	listCommentsUseCase *post.ListCommentsUseCase
}

// NewPostController creates a new post controller instance.
func NewPostController(
	feedUseCase *post.GetFeedUseCase,
	streamUseCase *post.StreamFeedUseCase,
	createUseCase *post.CreatePostUseCase,
	deleteUseCase *post.DeletePostUseCase,
	toggleLikeUseCase *post.ToggleLikeUseCase,
	addCommentUseCase *post.AddCommentUseCase,
	listCommentsUseCase *post.ListCommentsUseCase,
) *PostController {
	return &PostController{
		feedUseCase:         feedUseCase,
		streamUseCase:       streamUseCase,
		createUseCase:       createUseCase,
		deleteUseCase:       deleteUseCase,
		toggleLikeUseCase:   toggleLikeUseCase,
		addCommentUseCase:   addCommentUseCase,
		listCommentsUseCase: listCommentsUseCase,
	}
}

// Feed handles GET /feed requests.
func (c *PostController) Feed(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	output, err := c.feedUseCase.Execute(ctx.Request.Context(), post.GetFeedInput{ViewerID: userID})
	if err != nil {
		respondInternalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFeedResponse(output.Posts))
}

// Stream handles GET /feed/stream requests. Post changes are relayed as
// server-sent events until the client goes away.
func (c *PostController) Stream(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	output, err := c.streamUseCase.Execute(ctx.Request.Context(), post.StreamFeedInput{ViewerID: userID})
	if err != nil {
		respondInternalError(ctx, err)
		return
	}
	defer output.Close()

	ctx.Header("Cache-Control", "no-cache")
	ctx.Header("Connection", "keep-alive")
	ctx.Header("X-Accel-Buffering", "no")

	// Subscribed from here on; clients may start acting on the feed.
	ctx.SSEvent(readyEventName, "subscribed")
	ctx.Writer.Flush()

	heartbeat := time.NewTicker(heartbeatPeriod)
	defer heartbeat.Stop()

	ctx.Stream(func(_ io.Writer) bool {
		select {
		case <-ctx.Request.Context().Done():
			return false
		case <-heartbeat.C:
			ctx.SSEvent("ping", time.Now().UTC().Format(time.RFC3339))
			return true
		case event, ok := <-output.Events:
			if !ok {
				return false
			}
			ctx.SSEvent(postEventName, event)
			return true
		}
	})
}

// Create handles POST /posts requests.
func (c *PostController) Create(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreatePostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx, err, string(domainerror.ErrCodeMissingPostFields))
		return
	}

	petIDs := make([]uuid.UUID, 0, len(req.PetIDs))
	for _, raw := range req.PetIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid pet ID format",
				Code:  string(domainerror.ErrCodeMissingPostFields),
			})
			return
		}
		petIDs = append(petIDs, id)
	}

	input := post.CreatePostInput{
		AuthorID:   userID,
		Content:    req.Content,
		MediaURLs:  req.MediaURLs,
		Visibility: req.Visibility,
		PetIDs:     petIDs,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handlePostError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToPostResponse(output.Post))
}

// Delete handles DELETE /posts/:id requests.
func (c *PostController) Delete(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	postID, ok := parseIDParam(ctx, "id", "post")
	if !ok {
		return
	}

	err := c.deleteUseCase.Execute(ctx.Request.Context(), post.DeletePostInput{
		PostID: postID,
		UserID: userID,
	})
	if err != nil {
		c.handlePostError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// ToggleLike handles POST /posts/:id/like requests.
func (c *PostController) ToggleLike(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	postID, ok := parseIDParam(ctx, "id", "post")
	if !ok {
		return
	}

	output, err := c.toggleLikeUseCase.Execute(ctx.Request.Context(), post.ToggleLikeInput{
		PostID: postID,
		UserID: userID,
	})
	if err != nil {
		c.handlePostError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.LikeResponse{
		Liked:      output.Liked,
		LikesCount: output.LikesCount,
	})
}

// ListComments handles GET /posts/:id/comments requests.
func (c *PostController) ListComments(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	postID, ok := parseIDParam(ctx, "id", "post")
	if !ok {
		return
	}

	output, err := c.listCommentsUseCase.Execute(ctx.Request.Context(), post.ListCommentsInput{
		PostID:   postID,
		ViewerID: userID,
	})
	if err != nil {
		c.handlePostError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCommentListResponse(output.Comments))
}

// AddComment handles POST /posts/:id/comments requests.
func (c *PostController) AddComment(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	postID, ok := parseIDParam(ctx, "id", "post")
	if !ok {
		return
	}

	var req dto.CreateCommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx, err, string(domainerror.ErrCodeMissingPostFields))
		return
	}

	output, err := c.addCommentUseCase.Execute(ctx.Request.Context(), post.AddCommentInput{
		PostID:   postID,
		AuthorID: userID,
		Content:  req.Content,
	})
	if err != nil {
		c.handlePostError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CreateCommentResponse{
		Comment:       dto.ToCommentResponse(output.Comment),
		CommentsCount: output.CommentsCount,
	})
}

// handlePostError handles post errors and returns appropriate HTTP responses.
func (c *PostController) handlePostError(ctx *gin.Context, err error) {
	var postErr *domainerror.PostError
	if errors.As(err, &postErr) {
		ctx.JSON(c.getStatusCodeForPostError(postErr.Code), dto.ErrorResponse{
			Error: postErr.Message,
			Code:  string(postErr.Code),
		})
		return
	}

	respondInternalError(ctx, err)
}

// getStatusCodeForPostError maps post error codes to HTTP status codes.
func (c *PostController) getStatusCodeForPostError(code domainerror.PostErrorCode) int {
	switch code {
	case domainerror.ErrCodePostNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotPostAuthor:
		return http.StatusForbidden
	case domainerror.ErrCodeInvalidPostContent,
		domainerror.ErrCodeInvalidPostVisibility,
		domainerror.ErrCodeTaggedPetNotOwned,
		domainerror.ErrCodeInvalidCommentContent,
		domainerror.ErrCodeMissingPostFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
