package headless

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"sort-visualizer/internal/controllers"
	"sort-visualizer/internal/models"
	"sort-visualizer/internal/uithread"
)

type countingLogger struct {
	infos []string
}

func (c *countingLogger) Info(component, message string, fields map[string]interface{}) {
	c.infos = append(c.infos, message)
}
func (c *countingLogger) Error(string, error, map[string]interface{})    {}
func (c *countingLogger) Warning(string, string, map[string]interface{}) {}
func (c *countingLogger) Debug(string, string, map[string]interface{})   {}

func TestProgressIsThrottled(t *testing.T) {
	log := &countingLogger{}
	v := NewView(models.NewSharedArrayFrom([]float64{0.1}), 1, 4, 4, log)

	v.SetRunning(true)
	for i := 0; i <= 100; i++ {
		v.SetProgress(float64(i) / 100)
	}

	// 0%, 10%, ... 100%
	assert.Len(t, log.infos, 11)
}

func TestRefreshGridRendersFrames(t *testing.T) {
	v := NewView(models.NewSharedArrayFrom([]float64{0.1, 0.9}), 2, 8, 8, nil)

	v.RefreshGrid()
	v.RefreshGrid()
	assert.Equal(t, 2, v.Frames())
}

func TestHeadlessRunClosesWhenDone(t *testing.T) {
	array := models.NewSharedArrayFrom([]float64{0.9, 0.1, 0.5, 0.3, 0.7})
	loop := uithread.NewLoop()
	loop.Start()
	defer loop.Stop()

	mc := controllers.NewMainController(array, loop, nil, controllers.Options{
		RefreshInterval: time.Millisecond,
		CloseWhenDone:   true,
	})
	v := NewView(array, 5, 10, 10, nil)
	mc.SetMainView(v)
	mc.SetWindow(v)
	mc.Start()

	loop.Do(v.PressStart)

	select {
	case <-v.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("headless run did not finish")
	}

	assert.True(t, array.IsSorted())
	var status string
	loop.DoAndWait(func() { status = v.Status() })
	assert.Contains(t, status, "The first number is: 0.100000.")
}
