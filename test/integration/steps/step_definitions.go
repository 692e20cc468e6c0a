package steps

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/pawz-connect/backend/internal/integration/persistence/model"
)

const (
	testPassword       = "Paw#Print7Zq!"
	streamReadyTimeout = 5 * time.Second
	streamEventTimeout = 5 * time.Second
)

type testContext struct {
	client      *http.Client
	headers     map[string]string
	response    *response
	accessToken string
	sessions    map[string]session
	vars        map[string]string
	stream      *feedStream
}

type response struct {
	status int
	body   any
}

type session struct {
	userID       uuid.UUID
	email        string
	accessToken  string
	refreshToken string
}

type streamEvent struct {
	name string
	data string
}

type feedStream struct {
	cancel context.CancelFunc
	events chan streamEvent
}

func (t *testContext) before() {
	t.headers = make(map[string]string)
	t.response = nil
	t.accessToken = ""
	t.sessions = make(map[string]session)
	t.vars = make(map[string]string)
	t.closeStream()
}

func (t *testContext) closeStream() {
	if t.stream != nil {
		t.stream.cancel()
		t.stream = nil
	}
}

func (t *testContext) theAPIServerIsRunning() error {
	if shared == nil || shared.server == nil {
		return errors.New("test server is not running")
	}
	resp, err := t.client.Get(shared.server.URL + "/health")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check returned %d", resp.StatusCode)
	}
	return nil
}

// aUserIsRegistered signs a user up through the API and keeps their tokens.
func (t *testContext) aUserIsRegistered(username string) error {
	email := username + "@example.com"
	payload, _ := json.Marshal(map[string]string{
		"email":    email,
		"password": testPassword,
		"username": username,
	})

	status, body, err := t.do(http.MethodPost, "/api/v1/auth/register", payload, "application/json", "")
	if err != nil {
		return err
	}
	if status != http.StatusCreated {
		return fmt.Errorf("failed to register %s: status %d (body: %v)", username, status, body)
	}

	userID, err := uuid.Parse(fmt.Sprintf("%v", getFieldValue(body, "user.id")))
	if err != nil {
		return fmt.Errorf("register response has no user id: %w", err)
	}

	t.sessions[username] = session{
		userID:       userID,
		email:        email,
		accessToken:  fmt.Sprintf("%v", getFieldValue(body, "access_token")),
		refreshToken: fmt.Sprintf("%v", getFieldValue(body, "refresh_token")),
	}
	t.vars[username+"_id"] = userID.String()
	return nil
}

// iAmLoggedInAs switches the current bearer token, registering the user first if needed.
func (t *testContext) iAmLoggedInAs(username string) error {
	if _, ok := t.sessions[username]; !ok {
		if err := t.aUserIsRegistered(username); err != nil {
			return err
		}
	}
	s := t.sessions[username]
	t.accessToken = s.accessToken
	t.vars["refresh_token"] = s.refreshToken
	return nil
}

func (t *testContext) aPasswordResetTokenExistsFor(username string) error {
	return t.createResetToken(username, "reset_token", time.Now().UTC().Add(time.Hour))
}

func (t *testContext) anExpiredPasswordResetTokenExistsFor(username string) error {
	return t.createResetToken(username, "expired_reset_token", time.Now().UTC().Add(-time.Hour))
}

func (t *testContext) createResetToken(username, varName string, expiresAt time.Time) error {
	s, ok := t.sessions[username]
	if !ok {
		return fmt.Errorf("user %s is not registered", username)
	}

	token := "test-reset-token-" + uuid.New().String()
	t.vars[varName] = token

	return shared.db.DbConn.Create(&model.PasswordResetTokenModel{
		ID:        uuid.New(),
		Token:     token,
		UserID:    s.userID,
		Email:     s.email,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now().UTC(),
	}).Error
}

// aServiceNamedExists seeds the services directory, which has no write endpoint.
func (t *testContext) aServiceNamedExists(serviceType, name string) error {
	now := time.Now().UTC()
	id := uuid.New()
	t.vars["service_id"] = id.String()

	return shared.db.DbConn.Create(&model.PetServiceModel{
		ID:          id,
		Name:        name,
		Type:        serviceType,
		Description: name + " for every pet",
		Address:     "1 Bark Street",
		Verified:    true,
		RatingAvg:   decimal.Zero,
		CreatedAt:   now,
		UpdatedAt:   now,
	}).Error
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.accessToken = ""
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	return t.executeRequest(method, t.replacePlaceholders(path), nil, "application/json")
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, t.replacePlaceholders(path), payload, "application/json")
}

func (t *testContext) iUploadAPNGImageTo(width, height int, path string) error {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 200, A: 255})
		}
	}

	var encoded bytes.Buffer
	if err := png.Encode(&encoded, img); err != nil {
		return err
	}

	var form bytes.Buffer
	writer := multipart.NewWriter(&form)
	part, err := writer.CreateFormFile("file", "pet.png")
	if err != nil {
		return err
	}
	if _, err := part.Write(encoded.Bytes()); err != nil {
		return err
	}
	if err := writer.Close(); err != nil {
		return err
	}

	return t.executeRequest(http.MethodPost, t.replacePlaceholders(path), form.Bytes(), writer.FormDataContentType())
}

func (t *testContext) iSaveTheResponseFieldAs(field, name string) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	value := getFieldValue(t.response.body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, t.response.body)
	}
	t.vars[name] = fmt.Sprintf("%v", value)
	return nil
}

// replacePlaceholders substitutes {{name}} with saved values.
func (t *testContext) replacePlaceholders(content string) string {
	for name, value := range t.vars {
		content = strings.ReplaceAll(content, "{{"+name+"}}", value)
	}
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte, contentType string) error {
	status, body, err := t.do(method, path, payload, contentType, t.accessToken)
	if err != nil {
		return err
	}
	t.response = &response{status: status, body: body}
	return nil
}

func (t *testContext) do(method, path string, payload []byte, contentType, token string) (int, any, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, shared.server.URL+path, reader)
	if err != nil {
		return 0, nil, err
	}

	req.Header.Set("Content-Type", contentType)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, err
	}

	var body any
	if err := json.Unmarshal(bodyBytes, &body); err != nil {
		body = string(bodyBytes)
	}
	return resp.StatusCode, body, nil
}

// iOpenTheFeedStream connects to the SSE feed and waits for the ready event.
func (t *testContext) iOpenTheFeedStream() error {
	ctx, cancel := context.WithCancel(context.Background())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, shared.server.URL+"/api/v1/feed/stream", nil)
	if err != nil {
		cancel()
		return err
	}
	req.Header.Set("Authorization", "Bearer "+t.accessToken)
	req.Header.Set("Accept", "text/event-stream")

	// The default client timeout would cut the stream.
	resp, err := (&http.Client{}).Do(req)
	if err != nil {
		cancel()
		return err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		cancel()
		return fmt.Errorf("feed stream returned %d", resp.StatusCode)
	}

	stream := &feedStream{cancel: cancel, events: make(chan streamEvent, 16)}
	go readEvents(resp.Body, stream.events)
	t.stream = stream

	if _, err := t.waitForEvent("ready", "", streamReadyTimeout); err != nil {
		return err
	}
	return nil
}

func readEvents(body io.ReadCloser, events chan<- streamEvent) {
	defer body.Close()
	defer close(events)

	scanner := bufio.NewScanner(body)
	var current streamEvent
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "event:"):
			current.name = strings.TrimSpace(strings.TrimPrefix(line, "event:"))
		case strings.HasPrefix(line, "data:"):
			current.data += strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		case line == "":
			if current.name != "" || current.data != "" {
				events <- current
			}
			current = streamEvent{}
		}
	}
}

func (t *testContext) waitForEvent(name, contains string, timeout time.Duration) (streamEvent, error) {
	if t.stream == nil {
		return streamEvent{}, errors.New("feed stream is not open")
	}

	deadline := time.After(timeout)
	for {
		select {
		case event, ok := <-t.stream.events:
			if !ok {
				return streamEvent{}, errors.New("feed stream closed")
			}
			if event.name == name && strings.Contains(event.data, contains) {
				return event, nil
			}
		case <-deadline:
			return streamEvent{}, fmt.Errorf("no %q event containing %q within %s", name, contains, timeout)
		}
	}
}

func (t *testContext) theFeedStreamShouldReceiveAnEventContaining(name, contains string) error {
	_, err := t.waitForEvent(name, t.replacePlaceholders(contains), streamEventTimeout)
	return err
}

func (t *testContext) theEmailWorkerRuns() error {
	shared.injector.EmailWorker.ProcessNow(context.Background())
	return nil
}

func (t *testContext) theEmailAPIShouldHaveReceivedRequests(count int) error {
	got := shared.resend.RequestCount(http.MethodPost, resendEmailsPath)
	if got != count {
		return fmt.Errorf("expected %d email API requests, got %d", count, got)
	}
	return nil
}

func (t *testContext) theEmailAPIRequestShouldBeSentTo(index int, recipient string) error {
	body := shared.resend.GetRequestBody(http.MethodPost, resendEmailsPath, index-1)
	if body == nil {
		return fmt.Errorf("email API request %d not found", index)
	}
	to, _ := json.Marshal(body["to"])
	if !strings.Contains(string(to), recipient) {
		return fmt.Errorf("email API request %d sent to %s, expected %s", index, to, recipient)
	}
	return nil
}

func (t *testContext) theObjectStorageShouldContainObjects(count int) error {
	if got := shared.storage.Count(); got != count {
		return fmt.Errorf("expected %d stored objects, got %d", count, got)
	}
	return nil
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if _, ok := t.response.body.(map[string]any); !ok {
		return fmt.Errorf("response is not JSON: %v", t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field '%s': %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	value := getFieldValue(t.response.body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, t.response.body)
	}

	expectedValue = t.replacePlaceholders(expectedValue)
	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	if getFieldValue(t.response.body, field) == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldNotExist(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	if value := getFieldValue(t.response.body, field); value != nil {
		return fmt.Errorf("field '%s' unexpectedly present with value %v", field, value)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldHaveItems(field string, count int) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	items, ok := getFieldValue(t.response.body, field).([]any)
	if !ok {
		return fmt.Errorf("field '%s' is not a list: %v", field, t.response.body)
	}
	if len(items) != count {
		return fmt.Errorf("field '%s' expected %d items, got %d", field, count, len(items))
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	entity, ok := shared.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table '%s' not found in models", table)
	}

	entitySlicePtr := newSliceOf(entity)
	if err := shared.db.DbConn.Unscoped().Find(entitySlicePtr.Interface()).Error; err != nil {
		return err
	}

	if count := entitySlicePtr.Elem().Len(); count != quantity {
		return fmt.Errorf("expected %d objects in '%s', got %d", quantity, table, count)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(t.replacePlaceholders(content.Content)), &criteria); err != nil {
		return err
	}

	entity, ok := shared.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table '%s' not found in models", table)
	}

	entitySlicePtr := newSliceOf(entity)
	query := shared.db.DbConn.Unscoped()
	for key, value := range criteria {
		query = query.Where(fmt.Sprintf("%s = ?", key), value)
	}

	result := query.Find(entitySlicePtr.Interface())
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return result.Error
	}

	if count := entitySlicePtr.Elem().Len(); count != quantity {
		return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
	}
	return nil
}

func newSliceOf(entity any) reflect.Value {
	entityType := reflect.TypeOf(entity).Elem()
	entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
	entitySlicePtr := reflect.New(entitySlice.Type())
	entitySlicePtr.Elem().Set(entitySlice)
	return entitySlicePtr
}

// getFieldValue walks a dot separated path; numeric segments index lists.
func getFieldValue(object any, dotSeparatedField string) any {
	var field = object

	for _, currentField := range strings.Split(dotSeparatedField, ".") {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			arr, ok := field.([]any)
			if !ok || i >= len(arr) {
				return nil
			}
			field = arr[i]
			continue
		}

		m, ok := field.(map[string]any)
		if !ok {
			return nil
		}
		field = m[currentField]
	}

	return field
}
