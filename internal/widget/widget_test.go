package widget

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"cloud-dictionary-api/internal/models"
)

type mockSearcher struct {
	mock.Mock
}

func (m *mockSearcher) Search(ctx context.Context, query string) ([]models.Term, error) {
	args := m.Called(ctx, query)
	terms, _ := args.Get(0).([]models.Term)
	return terms, args.Error(1)
}

func TestMain(m *testing.M) {
	color.NoColor = true
	m.Run()
}

func TestWidget_SearchReplacesResults(t *testing.T) {
	searcher := &mockSearcher{}
	searcher.On("Search", mock.Anything, "compute").
		Return([]models.Term{models.NewTerm("EC2", "Elastic Compute Cloud")}, nil).Once()

	logger, _ := test.NewNullLogger()
	w := New(searcher, logger)
	assert.Empty(t, w.Results())

	w.SetQuery("compute")
	require.NoError(t, w.Search(context.Background()))

	require.Len(t, w.Results(), 1)
	assert.Equal(t, "EC2", w.Results()[0].Term)
	searcher.AssertExpectations(t)
}

func TestWidget_FailureKeepsPreviousResults(t *testing.T) {
	searcher := &mockSearcher{}
	searcher.On("Search", mock.Anything, "storage").
		Return([]models.Term{models.NewTerm("S3", "Simple Storage Service")}, nil).Once()
	searcher.On("Search", mock.Anything, "compute").
		Return(nil, errors.New("network down")).Once()

	logger, hook := test.NewNullLogger()
	w := New(searcher, logger)

	w.SetQuery("storage")
	require.NoError(t, w.Search(context.Background()))

	w.SetQuery("compute")
	assert.Error(t, w.Search(context.Background()))

	require.Len(t, w.Results(), 1)
	assert.Equal(t, "S3", w.Results()[0].Term)

	require.Len(t, hook.Entries, 1)
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
	assert.Equal(t, "compute", hook.LastEntry().Data["query"])
	searcher.AssertNumberOfCalls(t, "Search", 2)
}

func TestWidget_EmptyQuerySearchesEverything(t *testing.T) {
	searcher := &mockSearcher{}
	searcher.On("Search", mock.Anything, "").Return([]models.Term{}, nil).Once()

	w := New(searcher, nil)
	require.NoError(t, w.Search(context.Background()))
	assert.NotNil(t, w.Results())
	searcher.AssertExpectations(t)
}

func TestWidget_Render(t *testing.T) {
	searcher := &mockSearcher{}
	searcher.On("Search", mock.Anything, "c").Return([]models.Term{
		models.NewTerm("EC2", "Elastic Compute Cloud"),
		models.NewTerm("VPC", "Virtual Private Cloud"),
	}, nil)

	w := New(searcher, nil)
	w.SetQuery("c")
	require.NoError(t, w.Search(context.Background()))

	var buf bytes.Buffer
	require.NoError(t, w.Render(&buf))
	assert.Equal(t, "EC2: Elastic Compute Cloud\nVPC: Virtual Private Cloud\n", buf.String())

	// Rendering twice produces the same list, not an appended one
	buf.Reset()
	require.NoError(t, w.Render(&buf))
	assert.Equal(t, "EC2: Elastic Compute Cloud\nVPC: Virtual Private Cloud\n", buf.String())
}

func TestWidget_ConcurrentSearches(t *testing.T) {
	searcher := &mockSearcher{}
	searcher.On("Search", mock.Anything, mock.Anything).
		Return([]models.Term{models.NewTerm("EC2", "Elastic Compute Cloud")}, nil)

	w := New(searcher, nil)
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w.SetQuery("ec2")
			_ = w.Search(context.Background())
			_ = w.Results()
		}()
	}
	wg.Wait()

	assert.Len(t, w.Results(), 1)
}
