package app

import (
	"github.com/arvetile/catalog-backend/internal/platform/logger"
	"github.com/arvetile/catalog-backend/internal/utils"
)

type Config struct {
	DecorRoot           string
	TextureRoot         string
	DecorPublicPrefix   string
	TexturePublicPrefix string
}

func LoadConfig(log *logger.Logger) Config {
	decorRoot := utils.GetEnv("DECOR_LIBRARY_ROOT", "./DECORED", log)
	textureRoot := utils.GetEnv("TEXTURE_LIBRARY_ROOT", "./TEXTURES", log)
	decorPrefix := utils.GetEnv("DECOR_PUBLIC_PREFIX", "/DECORED", log)
	texturePrefix := utils.GetEnv("TEXTURE_PUBLIC_PREFIX", "/TEXTURES", log)
	return Config{
		DecorRoot:           decorRoot,
		TextureRoot:         textureRoot,
		DecorPublicPrefix:   decorPrefix,
		TexturePublicPrefix: texturePrefix,
	}
}
