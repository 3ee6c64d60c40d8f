package config_test

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/pelletier/go-toml/v2"

	"github.com/smykla-labs/anvilcost/internal/config"
	pkgconfig "github.com/smykla-labs/anvilcost/pkg/config"
	"github.com/smykla-labs/anvilcost/pkg/penalty"
)

var _ = Describe("Write", func() {
	It("should document every setting", func() {
		var buf bytes.Buffer
		Expect(config.Write(&buf, config.DefaultConfig())).To(Succeed())

		out := buf.String()
		Expect(out).To(ContainSubstring("[prior_work_penalty]"))
		Expect(out).To(ContainSubstring("[costs]"))
		Expect(out).To(ContainSubstring("[miscellaneous]"))
		Expect(out).To(ContainSubstring("# NONE: Penalty is disabled by staying at 0 and does not increase."))
		Expect(out).To(ContainSubstring("# Allowed values: NEVER, ALL_ITEMS, NAME_TAGS_ONLY"))
		Expect(out).To(ContainSubstring("# Range: 0 ~ 1"))
		Expect(out).To(ContainSubstring("# Range: >= 1"))

		for _, f := range pkgconfig.Schema() {
			Expect(out).To(ContainSubstring(f.Key+" = "), f.Path())
		}
	})

	It("should produce valid TOML", func() {
		var buf bytes.Buffer
		Expect(config.Write(&buf, config.DefaultConfig())).To(Succeed())

		var doc map[string]any
		Expect(toml.Unmarshal(buf.Bytes(), &doc)).To(Succeed())
		Expect(doc).To(HaveKeyWithValue("version", config.SchemaVersion))
		Expect(doc).To(HaveKey("costs"))
	})

	It("should round-trip through the loader", func() {
		cfg := config.DefaultConfig()
		cfg.PriorWorkPenalty.PriorWorkPenalty = penalty.PolicyVanilla
		cfg.Costs.FreeRenames = pkgconfig.FreeRenamesNameTagsOnly
		cfg.Costs.TooExpensiveLimit = 40
		cfg.Miscellaneous.AnvilBreakChance = 0.12

		path := filepath.Join(GinkgoT().TempDir(), ".anvilcost", "config.toml")
		Expect(config.WriteFile(path, cfg, false)).To(Succeed())

		info, err := os.Stat(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(info.Mode().Perm()).To(Equal(os.FileMode(0o600)))

		loaded, err := config.NewLoaderWithDirs("", "").LoadFile(path)
		Expect(err).NotTo(HaveOccurred())

		cfg.Version = config.SchemaVersion
		Expect(loaded).To(Equal(cfg))
	})

	It("should not overwrite an existing file without force", func() {
		path := filepath.Join(GinkgoT().TempDir(), "config.toml")
		Expect(config.WriteFile(path, config.DefaultConfig(), false)).To(Succeed())

		err := config.WriteFile(path, config.DefaultConfig(), false)
		Expect(errors.Is(err, config.ErrConfigExists)).To(BeTrue())

		Expect(config.WriteFile(path, config.DefaultConfig(), true)).To(Succeed())
	})
})
