package handlers

import (
	"context"
	"net/http"
	"sort"
	"sync"

	"battery_alert/internal/models"
	"battery_alert/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID      int
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	principal     service.Principal
	parseErr      error

	lastSignUpUsername string
	lastSignUpPassword string
	lastSignUpRole     models.Role
	lastGenUsername    string
	lastGenPassword    string
	lastParseToken     string
}

func (m *mockAuth) SignUp(ctx context.Context, username, password string, role models.Role) (int, error) {
	m.lastSignUpUsername = username
	m.lastSignUpPassword = password
	m.lastSignUpRole = role
	return m.signUpID, m.signUpErr
}
func (m *mockAuth) GenerateToken(ctx context.Context, username, password string) (string, error) {
	m.lastGenUsername = username
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (service.Principal, error) {
	m.lastParseToken = token
	return m.principal, m.parseErr
}

type mockAlerting struct {
	rec       models.AlertRecord
	err       error
	notifyErr error

	calls       int
	lastTarget  models.Target
	lastProfile models.DeviceProfile
	lastTemp    float64
}

func (m *mockAlerting) Notify(ctx context.Context, target models.Target, b models.Breach) error {
	return m.notifyErr
}
func (m *mockAlerting) CheckAndAlert(ctx context.Context, target models.Target, profile models.DeviceProfile, temperature float64) (models.AlertRecord, error) {
	m.calls++
	m.lastTarget = target
	m.lastProfile = profile
	m.lastTemp = temperature
	return m.rec, m.err
}

// mockAlertLog is read from the websocket goroutine, so it locks.
type mockAlertLog struct {
	mu       sync.Mutex
	resp     []models.AlertRecord
	err      error
	calls    int
	lastFilt service.AlertFilter

	lastSeq    int64
	lastSeqErr error
	tailErr    error
	tailAfters []int64
}

func (m *mockAlertLog) List(ctx context.Context, f service.AlertFilter) ([]models.AlertRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	m.lastFilt = f
	return m.resp, m.err
}

// Tail serves resp like the repository does: seq above after, in seq order, at most limit.
func (m *mockAlertLog) Tail(ctx context.Context, after int64, limit int) ([]models.AlertRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tailAfters = append(m.tailAfters, after)
	if m.tailErr != nil {
		return nil, m.tailErr
	}
	var out []models.AlertRecord
	for _, r := range m.resp {
		if r.Seq > after {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Seq < out[j].Seq })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *mockAlertLog) LastSeq(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastSeq, m.lastSeqErr
}

func (m *mockAlertLog) push(recs ...models.AlertRecord) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resp = append(m.resp, recs...)
}

func (m *mockAlertLog) afters() []int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]int64(nil), m.tailAfters...)
}

type mockProfiles struct {
	createID  int
	createErr error
	profile   models.DeviceProfile
	getErr    error
	list      []models.DeviceProfile
	listErr   error
	checkRec  models.AlertRecord
	checkErr  error

	lastCreated models.DeviceProfile
	lastID      int
	lastTarget  models.Target
	lastTemp    float64
}

func (m *mockProfiles) Create(ctx context.Context, p models.DeviceProfile) (int, error) {
	m.lastCreated = p
	return m.createID, m.createErr
}
func (m *mockProfiles) Get(ctx context.Context, id int) (models.DeviceProfile, error) {
	m.lastID = id
	return m.profile, m.getErr
}
func (m *mockProfiles) List(ctx context.Context) ([]models.DeviceProfile, error) {
	return m.list, m.listErr
}
func (m *mockProfiles) Check(ctx context.Context, id int, target models.Target, temperature float64) (models.AlertRecord, error) {
	m.lastID = id
	m.lastTarget = target
	m.lastTemp = temperature
	return m.checkRec, m.checkErr
}

// ---- Shared Test Helpers ----

const testToken = "good-token"

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

var (
	operator = service.Principal{UserID: 1, Role: models.RoleOperator}
	viewer   = service.Principal{UserID: 2, Role: models.RoleViewer}
)

// newAuthedService returns a Service whose token check always yields an operator.
func newAuthedService() *service.Service {
	return newServiceAs(operator)
}

func newServiceAs(p service.Principal) *service.Service {
	return &service.Service{
		Limits:        service.NewLimitsService(),
		Authorization: &mockAuth{principal: p},
	}
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
