package cli

import (
	"github.com/julianstephens/habits/internal/api"
	"github.com/julianstephens/habits/internal/imagecache"
	"github.com/julianstephens/habits/internal/storage"
)

// Context carries the shared collaborators into every command.
type Context struct {
	Store  storage.Provider
	Client *api.Client
	Images *imagecache.Cache
}
