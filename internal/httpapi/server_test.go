package httpapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"triviaBackend/internal/testutil"
	"triviaBackend/repository"
)

func newTestServer(t *testing.T, name string) *httptest.Server {
	t.Helper()
	d := testutil.OpenInMemoryDB(t, name)
	s := &Server{
		Users:        repository.NewUserRepository(d),
		Sessions:     repository.NewSessionRepository(d),
		Questions:    repository.NewQuestionRepository(d),
		Tags:         repository.NewTagRepository(d),
		QuestionTags: repository.NewQuestionTagRepository(d),
		Statistics:   repository.NewStatisticsRepository(d),
	}
	ts := httptest.NewServer(s.Routes())
	t.Cleanup(ts.Close)
	return ts
}

func doJSON(t *testing.T, method, url, token string, body any) (int, envelope) {
	t.Helper()
	var buf io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		buf = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, url, buf)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp.StatusCode, env
}

func dataField(t *testing.T, env envelope, key string) any {
	t.Helper()
	m, ok := env.Data.(map[string]any)
	if !ok {
		t.Fatalf("data is not an object: %#v", env.Data)
	}
	return m[key]
}

func TestAPI_RegisterLoginStatisticsLogout(t *testing.T) {
	ts := newTestServer(t, "api_flow")

	// Register
	status, env := doJSON(t, "POST", ts.URL+"/api/v1/users", "", map[string]string{
		"username": "alice", "password": "sup3rsecret",
	})
	if status != http.StatusCreated {
		t.Fatalf("register: status=%d env=%+v", status, env)
	}
	userUUID, _ := dataField(t, env, "uuid").(string)
	if userUUID == "" {
		t.Fatalf("register returned no uuid: %+v", env)
	}

	// Duplicate register
	status, _ = doJSON(t, "POST", ts.URL+"/api/v1/users", "", map[string]string{
		"username": "alice", "password": "sup3rsecret",
	})
	if status != http.StatusConflict {
		t.Fatalf("duplicate register: status=%d", status)
	}

	// Login: unknown user is 404, wrong password 403
	status, _ = doJSON(t, "POST", ts.URL+"/api/v1/sessions", "", map[string]string{
		"username": "nobody", "password": "sup3rsecret",
	})
	if status != http.StatusNotFound {
		t.Fatalf("login unknown user: status=%d", status)
	}
	status, _ = doJSON(t, "POST", ts.URL+"/api/v1/sessions", "", map[string]string{
		"username": "alice", "password": "wrongwr0ng",
	})
	if status != http.StatusForbidden {
		t.Fatalf("login wrong password: status=%d", status)
	}

	// Login
	status, env = doJSON(t, "POST", ts.URL+"/api/v1/sessions", "", map[string]string{
		"username": "alice", "password": "sup3rsecret",
	})
	if status != http.StatusCreated {
		t.Fatalf("login: status=%d env=%+v", status, env)
	}
	token, _ := dataField(t, env, "token").(string)
	if token == "" {
		t.Fatalf("login returned no token: %+v", env)
	}

	// Fresh statistics are zeroed
	status, env = doJSON(t, "GET", ts.URL+"/api/v1/statistics", token, nil)
	if status != http.StatusOK {
		t.Fatalf("get statistics: status=%d env=%+v", status, env)
	}
	if xp, _ := dataField(t, env, "xp").(float64); xp != 0 {
		t.Fatalf("fresh xp = %v, want 0", xp)
	}

	// One correct, one incorrect answer
	status, env = doJSON(t, "PATCH", ts.URL+"/api/v1/statistics", token, map[string]bool{"correct": true})
	if status != http.StatusOK {
		t.Fatalf("patch statistics: status=%d env=%+v", status, env)
	}
	status, env = doJSON(t, "PATCH", ts.URL+"/api/v1/statistics", token, map[string]bool{"correct": false})
	if status != http.StatusOK {
		t.Fatalf("patch statistics: status=%d env=%+v", status, env)
	}
	if xp, _ := dataField(t, env, "xp").(float64); xp != 12 {
		t.Fatalf("xp = %v, want 12", xp)
	}
	if wins, _ := dataField(t, env, "wins").(float64); wins != 1 {
		t.Fatalf("wins = %v, want 1", wins)
	}
	if losses, _ := dataField(t, env, "losses").(float64); losses != 1 {
		t.Fatalf("losses = %v, want 1", losses)
	}

	// Logout kills the token
	status, _ = doJSON(t, "DELETE", ts.URL+"/api/v1/sessions", token, nil)
	if status != http.StatusOK {
		t.Fatalf("logout: status=%d", status)
	}
	status, _ = doJSON(t, "GET", ts.URL+"/api/v1/statistics", token, nil)
	if status != http.StatusUnauthorized {
		t.Fatalf("revoked token: status=%d, want 401", status)
	}
}

func TestAPI_AuthGate(t *testing.T) {
	ts := newTestServer(t, "api_gate")

	gated := []struct {
		method, path string
	}{
		{"GET", "/api/v1/users/some-uuid"},
		{"PATCH", "/api/v1/users/some-uuid"},
		{"DELETE", "/api/v1/users/some-uuid"},
		{"DELETE", "/api/v1/sessions"},
		{"GET", "/api/v1/tags"},
		{"POST", "/api/v1/tags"},
		{"GET", "/api/v1/question-tags"},
		{"GET", "/api/v1/statistics"},
		{"PATCH", "/api/v1/statistics"},
	}
	// No header at all is the caller's fault: 400, not 401
	for _, tc := range gated {
		status, _ := doJSON(t, tc.method, ts.URL+tc.path, "", nil)
		if status != http.StatusBadRequest {
			t.Errorf("%s %s without header: status=%d, want 400", tc.method, tc.path, status)
		}
	}

	// Garbage tokens and malformed headers
	status, _ := doJSON(t, "GET", ts.URL+"/api/v1/statistics", "not-a-real-token", nil)
	if status != http.StatusUnauthorized {
		t.Fatalf("bogus token: status=%d, want 401", status)
	}
	req, _ := http.NewRequest("GET", ts.URL+"/api/v1/statistics", nil)
	req.Header.Set("Authorization", "Basic abc123")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("non-bearer scheme: status=%d, want 400", resp.StatusCode)
	}

	// Question reads stay public
	status, _ = doJSON(t, "GET", ts.URL+"/api/v1/questions", "", nil)
	if status != http.StatusOK {
		t.Fatalf("public question list: status=%d, want 200", status)
	}
}

func TestAPI_UserOwnership(t *testing.T) {
	ts := newTestServer(t, "api_owner")

	register := func(name string) string {
		t.Helper()
		status, env := doJSON(t, "POST", ts.URL+"/api/v1/users", "", map[string]string{
			"username": name, "password": "sup3rsecret",
		})
		if status != http.StatusCreated {
			t.Fatalf("register %s: status=%d", name, status)
		}
		uuid, _ := dataField(t, env, "uuid").(string)
		return uuid
	}
	login := func(name string) string {
		t.Helper()
		status, env := doJSON(t, "POST", ts.URL+"/api/v1/sessions", "", map[string]string{
			"username": name, "password": "sup3rsecret",
		})
		if status != http.StatusCreated {
			t.Fatalf("login %s: status=%d", name, status)
		}
		token, _ := dataField(t, env, "token").(string)
		return token
	}

	aliceUUID := register("alice")
	bobUUID := register("bob")
	aliceToken := login("alice")

	// Alice reads herself, not Bob
	status, _ := doJSON(t, "GET", ts.URL+"/api/v1/users/"+aliceUUID, aliceToken, nil)
	if status != http.StatusOK {
		t.Fatalf("read own profile: status=%d", status)
	}
	status, _ = doJSON(t, "GET", ts.URL+"/api/v1/users/"+bobUUID, aliceToken, nil)
	if status != http.StatusForbidden {
		t.Fatalf("read other profile: status=%d, want 403", status)
	}
	status, _ = doJSON(t, "DELETE", ts.URL+"/api/v1/users/"+bobUUID, aliceToken, nil)
	if status != http.StatusForbidden {
		t.Fatalf("delete other profile: status=%d, want 403", status)
	}

	// Patch own password, old one stops working
	status, _ = doJSON(t, "PATCH", ts.URL+"/api/v1/users/"+aliceUUID, aliceToken, map[string]string{
		"password": "n3wpassword",
	})
	if status != http.StatusOK {
		t.Fatalf("patch own password: status=%d", status)
	}
	status, _ = doJSON(t, "POST", ts.URL+"/api/v1/sessions", "", map[string]string{
		"username": "alice", "password": "sup3rsecret",
	})
	if status != http.StatusForbidden {
		t.Fatalf("old password after change: status=%d, want 403", status)
	}
}

func TestAPI_QuestionsTagsAssociations(t *testing.T) {
	ts := newTestServer(t, "api_questions")

	// Need a session for tag and association routes
	status, _ := doJSON(t, "POST", ts.URL+"/api/v1/users", "", map[string]string{
		"username": "editor", "password": "sup3rsecret",
	})
	if status != http.StatusCreated {
		t.Fatalf("register: status=%d", status)
	}
	status, env := doJSON(t, "POST", ts.URL+"/api/v1/sessions", "", map[string]string{
		"username": "editor", "password": "sup3rsecret",
	})
	if status != http.StatusCreated {
		t.Fatalf("login: status=%d", status)
	}
	token, _ := dataField(t, env, "token").(string)

	// Questions are public
	status, env = doJSON(t, "POST", ts.URL+"/api/v1/questions", "", map[string]any{
		"question": "Largest planet?", "difficulty": 1,
		"option1": "Jupiter", "option2": "Mars",
	})
	if status != http.StatusCreated {
		t.Fatalf("create question: status=%d env=%+v", status, env)
	}
	qID, _ := dataField(t, env, "id").(float64)

	// Invalid option layout is 400
	status, _ = doJSON(t, "POST", ts.URL+"/api/v1/questions", "", map[string]any{
		"question": "Broken?", "difficulty": 1,
		"option1": "a", "option2": "b", "option4": "d",
	})
	if status != http.StatusBadRequest {
		t.Fatalf("option4 without option3: status=%d, want 400", status)
	}

	status, env = doJSON(t, "POST", ts.URL+"/api/v1/tags", token, map[string]string{
		"name": "astronomy", "description": "space stuff",
	})
	if status != http.StatusCreated {
		t.Fatalf("create tag: status=%d env=%+v", status, env)
	}
	tagID, _ := dataField(t, env, "id").(float64)

	status, _ = doJSON(t, "POST", ts.URL+"/api/v1/question-tags", token, map[string]any{
		"question_id": qID, "tag_id": tagID,
	})
	if status != http.StatusCreated {
		t.Fatalf("associate: status=%d", status)
	}
	// Duplicate association
	status, _ = doJSON(t, "POST", ts.URL+"/api/v1/question-tags", token, map[string]any{
		"question_id": qID, "tag_id": tagID,
	})
	if status != http.StatusConflict {
		t.Fatalf("duplicate association: status=%d, want 409", status)
	}
	// Missing side
	status, _ = doJSON(t, "POST", ts.URL+"/api/v1/question-tags", token, map[string]any{
		"question_id": 9999, "tag_id": tagID,
	})
	if status != http.StatusNotFound {
		t.Fatalf("associate missing question: status=%d, want 404", status)
	}

	// Question read carries its tag ids
	status, env = doJSON(t, "GET", ts.URL+fmt.Sprintf("/api/v1/questions/%d", int64(qID)), "", nil)
	if status != http.StatusOK {
		t.Fatalf("get question: status=%d", status)
	}
	tagIDs, _ := dataField(t, env, "tag_ids").([]any)
	if len(tagIDs) != 1 {
		t.Fatalf("tag_ids = %v, want one entry", tagIDs)
	}

	// Pair delete then question delete
	status, _ = doJSON(t, "DELETE", ts.URL+fmt.Sprintf("/api/v1/question-tags/%d/%d", int64(qID), int64(tagID)), token, nil)
	if status != http.StatusOK {
		t.Fatalf("delete association: status=%d", status)
	}
	status, _ = doJSON(t, "DELETE", ts.URL+fmt.Sprintf("/api/v1/questions/%d", int64(qID)), "", nil)
	if status != http.StatusOK {
		t.Fatalf("delete question: status=%d", status)
	}
	status, _ = doJSON(t, "DELETE", ts.URL+fmt.Sprintf("/api/v1/questions/%d", int64(qID)), "", nil)
	if status != http.StatusNotFound {
		t.Fatalf("delete missing question: status=%d, want 404", status)
	}
	// Bad path id
	status, _ = doJSON(t, "GET", ts.URL+"/api/v1/questions/abc", "", nil)
	if status != http.StatusBadRequest {
		t.Fatalf("non-numeric id: status=%d, want 400", status)
	}
}

func TestAPI_Health(t *testing.T) {
	ts := newTestServer(t, "api_health")

	resp, err := http.Get(ts.URL + "/api/health")
	if err != nil {
		t.Fatalf("health: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("health status=%d", resp.StatusCode)
	}
}
