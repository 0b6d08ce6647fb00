package metadata_test

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	. "github.com/onsi/gomega"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/mock"

	"github.com/selebrow/percy-selenium/internal/services/metadata"
	"github.com/selebrow/percy-selenium/mocks"
	"github.com/selebrow/percy-selenium/pkg/webdriver"
)

func TestNewDriverMetadata(t *testing.T) {
	g := NewWithT(t)

	d := mocks.NewDriver(t)
	d.EXPECT().SessionID().Return("", errors.New("no session")).Once()

	_, err := metadata.NewDriverMetadata(d, metadata.NewLocalCache())
	g.Expect(err).To(MatchError(ContainSubstring("no session")))

	d = mocks.NewDriver(t)
	d.EXPECT().SessionID().Return("", nil).Once()
	_, err = metadata.NewDriverMetadata(d, metadata.NewLocalCache())
	g.Expect(err).To(HaveOccurred())
}

func TestDriverMetadata_Capabilities(t *testing.T) {
	g := NewWithT(t)
	ctx := context.Background()
	cache := metadata.NewLocalCache()

	d := mocks.NewDriver(t)
	d.EXPECT().SessionID().Return("s1", nil).Once()
	d.EXPECT().Capabilities(mock.Anything).Return(map[string]interface{}{
		"browserName":    "chrome",
		"browserVersion": "120.0",
		"platformName":   "linux",
		"proxy":          map[string]interface{}{"proxyType": "manual"},
		"osVersion":      11,
		"deviceName":     nil,
		"goog:chromeOptions": map[string]interface{}{
			"args": []string{"--headless"},
		},
	}, nil).Once()

	m, err := metadata.NewDriverMetadata(d, cache)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(m.SessionID()).To(Equal("s1"))

	exp := map[string]string{
		"browserName":    "chrome",
		"browserVersion": "120.0",
		"platformName":   "linux",
		"proxy":          `{"proxyType":"manual"}`,
		"osVersion":      "11",
	}
	caps, err := m.Capabilities(ctx)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(caps).To(Equal(exp))

	caps["browserName"] = "firefox"
	caps, err = m.Capabilities(ctx)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(caps).To(Equal(exp))
	g.Expect(cache.Len()).To(Equal(1))
}

func TestDriverMetadata_CapabilitiesConcurrent(t *testing.T) {
	g := NewWithT(t)
	cache := metadata.NewLocalCache()

	d := mocks.NewDriver(t)
	d.EXPECT().SessionID().Return("s2", nil)
	d.EXPECT().Capabilities(mock.Anything).RunAndReturn(func(context.Context) (map[string]interface{}, error) {
		time.Sleep(50 * time.Millisecond)
		return map[string]interface{}{"browserName": "chrome"}, nil
	}).Once()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m, err := metadata.NewDriverMetadata(d, cache)
			g.Expect(err).ToNot(HaveOccurred())
			caps, err := m.Capabilities(context.Background())
			g.Expect(err).ToNot(HaveOccurred())
			g.Expect(caps).To(Equal(map[string]string{"browserName": "chrome"}))
		}()
	}
	wg.Wait()
}

func TestDriverMetadata_SessionsDoNotCollide(t *testing.T) {
	g := NewWithT(t)
	ctx := context.Background()
	cache := metadata.NewLocalCache()

	d1 := mocks.NewDriver(t)
	d1.EXPECT().SessionID().Return("a", nil).Once()
	d1.EXPECT().Capabilities(mock.Anything).Return(map[string]interface{}{"browserName": "chrome"}, nil).Once()

	d2 := mocks.NewDriver(t)
	d2.EXPECT().SessionID().Return("b", nil).Once()
	d2.EXPECT().Capabilities(mock.Anything).Return(map[string]interface{}{"browserName": "firefox"}, nil).Once()

	m1, err := metadata.NewDriverMetadata(d1, cache)
	g.Expect(err).ToNot(HaveOccurred())
	m2, err := metadata.NewDriverMetadata(d2, cache)
	g.Expect(err).ToNot(HaveOccurred())

	c1, err := m1.Capabilities(ctx)
	g.Expect(err).ToNot(HaveOccurred())
	c2, err := m2.Capabilities(ctx)
	g.Expect(err).ToNot(HaveOccurred())

	g.Expect(c1).To(HaveKeyWithValue("browserName", "chrome"))
	g.Expect(c2).To(HaveKeyWithValue("browserName", "firefox"))
}

func TestDriverMetadata_SeparateCaches(t *testing.T) {
	g := NewWithT(t)
	caches := []*metadata.LocalCache{metadata.NewLocalCache(), metadata.NewLocalCache()}

	d := mocks.NewDriver(t)
	d.EXPECT().SessionID().Return("shared", nil)
	d.EXPECT().Capabilities(mock.Anything).RunAndReturn(func(context.Context) (map[string]interface{}, error) {
		time.Sleep(50 * time.Millisecond)
		return map[string]interface{}{"browserName": "chrome"}, nil
	}).Twice()

	var wg sync.WaitGroup
	for _, cache := range caches {
		cache := cache
		wg.Add(1)
		go func() {
			defer wg.Done()
			m, err := metadata.NewDriverMetadata(d, cache)
			g.Expect(err).ToNot(HaveOccurred())
			_, err = m.Capabilities(context.Background())
			g.Expect(err).ToNot(HaveOccurred())
		}()
	}
	wg.Wait()

	for _, cache := range caches {
		g.Expect(cache.Len()).To(Equal(1))
	}
}

// mapCache has no GetOrCompute, values are computed on every miss
type mapCache map[string]interface{}

func (c mapCache) Get(key string) (interface{}, bool) {
	v, ok := c[key]
	return v, ok
}

func (c mapCache) Put(key string, val interface{}) {
	c[key] = val
}

func TestDriverMetadata_PlainCache(t *testing.T) {
	g := NewWithT(t)
	cache := mapCache{}

	d := mocks.NewDriver(t)
	d.EXPECT().SessionID().Return("s3", nil).Once()
	d.EXPECT().Capabilities(mock.Anything).Return(map[string]interface{}{"browserName": "safari"}, nil).Once()

	m, err := metadata.NewDriverMetadata(d, cache)
	g.Expect(err).ToNot(HaveOccurred())
	for i := 0; i < 2; i++ {
		caps, err := m.Capabilities(context.Background())
		g.Expect(err).ToNot(HaveOccurred())
		g.Expect(caps).To(Equal(map[string]string{"browserName": "safari"}))
	}
	g.Expect(cache).To(HaveLen(1))
}

func TestDriverMetadata_CapabilitiesError(t *testing.T) {
	g := NewWithT(t)
	ctx := context.Background()

	d := mocks.NewDriver(t)
	d.EXPECT().SessionID().Return("s3", nil).Once()
	d.EXPECT().Capabilities(mock.Anything).Return(nil, errors.New("session gone")).Once()
	d.EXPECT().Capabilities(mock.Anything).Return(map[string]interface{}{"platform": "WINDOWS"}, nil).Once()

	m, err := metadata.NewDriverMetadata(d, metadata.NewLocalCache())
	g.Expect(err).ToNot(HaveOccurred())

	_, err = m.Capabilities(ctx)
	g.Expect(err).To(MatchError(ContainSubstring("session gone")))

	caps, err := m.Capabilities(ctx)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(caps).To(Equal(map[string]string{"platform": "WINDOWS"}))
}

type unwrappable struct {
	inner webdriver.CommandExecutor
	err   error
}

func (*unwrappable) Execute(context.Context, string, string, interface{}, interface{}) error {
	return nil
}

func (u *unwrappable) Unwrap() (webdriver.CommandExecutor, error) {
	return u.inner, u.err
}

func TestDriverMetadata_CommandExecutorURL(t *testing.T) {
	g := NewWithT(t)
	ctx := context.Background()

	exec, err := webdriver.NewHTTPCommandExecutor("https://hub.example.com/wd/hub", http.DefaultClient)
	g.Expect(err).ToNot(HaveOccurred())

	d := mocks.NewDriver(t)
	d.EXPECT().SessionID().Return("s4", nil).Once()
	d.EXPECT().CommandExecutor().Return(&unwrappable{inner: exec}).Once()

	m, err := metadata.NewDriverMetadata(d, metadata.NewLocalCache())
	g.Expect(err).ToNot(HaveOccurred())

	for i := 0; i < 3; i++ {
		u, err := m.CommandExecutorURL(ctx)
		g.Expect(err).ToNot(HaveOccurred())
		g.Expect(u).To(Equal("https://hub.example.com/wd/hub"))
	}
}

func TestDriverMetadata_CommandExecutorURLUnwrapFailure(t *testing.T) {
	g := NewWithT(t)
	ctx := context.Background()

	d := mocks.NewDriver(t)
	d.EXPECT().SessionID().Return("s5", nil).Once()
	d.EXPECT().CommandExecutor().Return(&unwrappable{err: errors.New("no delegate")}).Twice()

	m, err := metadata.NewDriverMetadata(d, metadata.NewLocalCache())
	g.Expect(err).ToNot(HaveOccurred())

	_, err = m.CommandExecutorURL(ctx)
	g.Expect(err).To(MatchError(ContainSubstring("no delegate")))

	_, err = m.CommandExecutorURL(ctx)
	g.Expect(err).To(HaveOccurred())
}

func TestLocalCache(t *testing.T) {
	g := NewWithT(t)

	c := metadata.NewLocalCache()
	_, ok := c.Get("k")
	g.Expect(ok).To(BeFalse())

	c.Put("k", "v1")
	c.Put("k", "v2")
	v, ok := c.Get("k")
	g.Expect(ok).To(BeTrue())
	g.Expect(v).To(Equal("v2"))
	g.Expect(c.Len()).To(Equal(1))
}
