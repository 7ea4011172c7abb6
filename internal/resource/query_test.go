package resource

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func listQueryFor(t *testing.T, url string, d Descriptor) ListQuery {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", url, nil)
	return ParseListQuery(c, d)
}

func TestParseListQuery_Defaults(t *testing.T) {
	d := Descriptor{DateColumn: "date", Filters: map[string]string{"siteId": "site_id"}}
	q := listQueryFor(t, "/things", d)

	assert.Empty(t, q.Equals)
	assert.Equal(t, DefaultLimit, q.Limit)
	assert.Zero(t, q.Offset)
}

func TestParseListQuery_FiltersAndRange(t *testing.T) {
	d := Descriptor{DateColumn: "date", Filters: map[string]string{"siteId": "site_id", "status": "status"}}
	q := listQueryFor(t, "/things?siteId=abc&status=PRESENT&from=2026-01-01&to=2026-01-31", d)

	assert.Equal(t, map[string]string{"site_id": "abc", "status": "PRESENT"}, q.Equals)
	assert.Equal(t, "2026-01-01", q.From)
	assert.Equal(t, "2026-01-31", q.To)
}

func TestParseListQuery_UnknownParamIgnored(t *testing.T) {
	d := Descriptor{Filters: map[string]string{"siteId": "site_id"}}
	q := listQueryFor(t, "/things?bogus=1", d)
	assert.Empty(t, q.Equals)
}

func TestParseListQuery_LimitClamp(t *testing.T) {
	d := Descriptor{}
	q := listQueryFor(t, "/things?limit=999999", d)
	assert.Equal(t, MaxLimit, q.Limit)

	q = listQueryFor(t, "/things?limit=-5", d)
	assert.Equal(t, DefaultLimit, q.Limit)

	q = listQueryFor(t, "/things?limit=42", d)
	assert.Equal(t, 42, q.Limit)
}

func TestParseListQuery_DescriptorDefaultLimit(t *testing.T) {
	d := Descriptor{DefaultLimit: 200}
	q := listQueryFor(t, "/things", d)
	assert.Equal(t, 200, q.Limit)
}

func TestParseListQuery_PageOffset(t *testing.T) {
	d := Descriptor{}
	q := listQueryFor(t, "/things?page=3&limit=100", d)
	assert.Equal(t, 200, q.Offset)

	q = listQueryFor(t, "/things?page=1", d)
	assert.Zero(t, q.Offset)
}
