// Command voxelbake bakes a manifest of voxel model definitions into
// side-partitioned geometry and reports per-model statistics.
package main

import (
	"flag"
	"os"

	"github.com/xlab/closer"
	"go.uber.org/zap"

	"voxelbake/internal/config"
	"voxelbake/internal/library"
	"voxelbake/internal/logger"
	"voxelbake/pkg/meshsource"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	manifestPath := flag.String("manifest", "assets/models.yaml", "path to the model manifest")
	assetsPath := flag.String("assets", "assets", "assets directory holding mesh files")
	failFast := flag.Bool("fail-fast", false, "abort on the first model that fails to bake")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Init("info", "")
		logger.Error("invalid configuration", zap.Error(err))
		os.Exit(1)
	}

	logger.Init(cfg.Log.Level, cfg.Log.File)
	closer.Bind(logger.Sync)
	defer closer.Close()

	mf, err := loadManifest(*manifestPath)
	if err != nil {
		logger.Error("could not load manifest", zap.Error(err))
		os.Exit(1)
	}

	loader := meshsource.NewLoader(*assetsPath)
	lib := library.New()
	lib.SetAtlasSize(cfg.AtlasSize)
	lib.SetBakeTangents(cfg.BakeTangents)

	for _, entry := range mf.Models {
		m, err := buildModel(entry, loader, cfg.MaxMaterials)
		if err != nil {
			logger.Error("skipping model", zap.Error(err))
			if *failFast {
				os.Exit(1)
			}
			continue
		}
		if _, err := lib.Register(m); err != nil {
			logger.Error("could not register model", zap.String("name", entry.Name), zap.Error(err))
			os.Exit(1)
		}
	}

	logger.Info("baking",
		zap.Int("models", lib.Len()),
		zap.Int("atlas_size", cfg.AtlasSize),
		zap.Bool("tangents", cfg.BakeTangents))

	if err := lib.BakeAll(*failFast); err != nil {
		logger.Error("bake aborted", zap.Error(err))
		os.Exit(1)
	}

	for id := 0; id < lib.Len(); id++ {
		baked := lib.Baked(id)
		logger.Info("baked model",
			zap.Int("id", id),
			zap.String("name", lib.Model(id).Name()),
			zap.Bool("empty", baked.Empty),
			zap.Int("vertices", baked.VertexCount()),
			zap.Int("triangles", baked.TriangleCount()))
	}
}
