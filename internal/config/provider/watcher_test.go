package provider_test

import (
	"context"
	"os"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/smykla-labs/anvilcost/internal/config"
	"github.com/smykla-labs/anvilcost/internal/config/provider"
	pkgconfig "github.com/smykla-labs/anvilcost/pkg/config"
)

var _ = Describe("Watcher", func() {
	var (
		path    string
		watcher *provider.Watcher
		cancel  context.CancelFunc
		done    chan error
		changes chan *pkgconfig.Config
	)

	write := func(content string) {
		ExpectWithOffset(1, os.WriteFile(path, []byte(content), 0o600)).To(Succeed())
	}

	maxIncrease := func() int {
		cfg := watcher.Current()
		if cfg == nil {
			return 0
		}

		return cfg.PriorWorkPenalty.MaximumPriorWorkPenaltyIncrease
	}

	BeforeEach(func() {
		path = filepath.Join(GinkgoT().TempDir(), "config.toml")
		write("[prior_work_penalty]\nmaximum_prior_work_penalty_increase = 3\n")

		loader := config.NewLoaderWithDirs("", "").WithFile(path)
		p := provider.NewDefaultProvider(loader, nil)

		var err error
		watcher, err = provider.NewWatcher(p, p.WatchPaths())
		Expect(err).NotTo(HaveOccurred())

		changes = make(chan *pkgconfig.Config, 10)
		watcher.WithDebounce(20 * time.Millisecond).OnChange(func(cfg *pkgconfig.Config) {
			changes <- cfg
		})

		var ctx context.Context
		ctx, cancel = context.WithCancel(context.Background())
		done = make(chan error, 1)

		go func() {
			done <- watcher.Run(ctx)
		}()

		Eventually(maxIncrease).Should(Equal(3))
	})

	AfterEach(func() {
		cancel()
		Eventually(done).Should(Receive(BeNil()))
	})

	It("should watch the configured file", func() {
		Expect(watcher.Paths()).To(ConsistOf(path))
	})

	It("should reload when the file changes", func() {
		write("[prior_work_penalty]\nmaximum_prior_work_penalty_increase = 5\n")

		Eventually(maxIncrease, time.Second).Should(Equal(5))

		var cfg *pkgconfig.Config
		Eventually(changes, time.Second).Should(Receive(&cfg))
		Expect(cfg.PriorWorkPenalty.MaximumPriorWorkPenaltyIncrease).To(Equal(5))
	})

	It("should keep the previous settings when the new file is invalid", func() {
		write("[prior_work_penalty]\nmaximum_prior_work_penalty_increase = 0\n")

		Consistently(maxIncrease, 200*time.Millisecond).Should(Equal(3))
		Expect(changes).NotTo(Receive())
	})
})
