package rewindfs

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"bazil.org/fuse"
	"bazil.org/fuse/fs"

	"github.com/rewindfs/rewindfs/rewind"
)

// FS implements the rewindfs FUSE filesystem: a read-only projection of
// one sync root where the first path segment under the mount selects the
// unix timestamp to view.
type FS struct {
	tree *rewind.Tree
	log  *slog.Logger
}

// New creates a filesystem over the given tree. A nil logger disables
// adapter logging; the core below never logs either way.
func New(tree *rewind.Tree, logger *slog.Logger) *FS {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &FS{tree: tree, log: logger}
}

// Root returns the mount root node.
func (f *FS) Root() (fs.Node, error) {
	return &rootDir{fs: f}, nil
}

// rootDir is the mount root. Its children are timestamps, which cannot be
// enumerated, so the listing is empty; lookups of numeric names succeed.
type rootDir struct {
	fs *FS
}

func (d *rootDir) Attr(ctx context.Context, a *fuse.Attr) error {
	a.Inode = 1
	a.Mode = os.ModeDir | 0o555
	if info, err := os.Stat(d.fs.tree.Root()); err == nil {
		a.Mtime = info.ModTime()
		a.Ctime = info.ModTime()
	}
	return nil
}

func (d *rootDir) Lookup(ctx context.Context, name string) (fs.Node, error) {
	ts, rel, err := rewind.ParsePath("/" + name)
	if err != nil || rel != "" {
		return nil, syscall.ENOENT
	}
	return &snapDir{fs: d.fs, ts: ts}, nil
}

func (d *rootDir) ReadDirAll(ctx context.Context) ([]fuse.Dirent, error) {
	return nil, nil
}

// snapDir is a directory inside one timestamp's view. rel is empty for
// the view root.
type snapDir struct {
	fs  *FS
	ts  int64
	rel string
}

func (d *snapDir) virtualPath() string {
	p := "/" + strconv.FormatInt(d.ts, 10)
	if d.rel != "" {
		p += "/" + d.rel
	}
	return p
}

func (d *snapDir) Attr(ctx context.Context, a *fuse.Attr) error {
	a.Inode = inodeForPath(d.virtualPath())
	a.Mode = os.ModeDir | 0o555

	// Times come from the live directory when it exists, the sync root
	// otherwise. Directory history is not modeled.
	info, err := os.Stat(filepath.Join(d.fs.tree.Root(), filepath.FromSlash(d.rel)))
	if err != nil {
		info, err = os.Stat(d.fs.tree.Root())
	}
	if err == nil {
		a.Mtime = info.ModTime()
		a.Ctime = info.ModTime()
	}
	return nil
}

func (d *snapDir) Lookup(ctx context.Context, name string) (fs.Node, error) {
	rel := name
	if d.rel != "" {
		rel = d.rel + "/" + name
	}

	v, err := d.fs.tree.Resolve(d.ts, rel)
	switch {
	case err == nil:
		return &file{fs: d.fs, version: v}, nil
	case errors.Is(err, rewind.ErrNotFound):
		// Names that resolve to no file version are optimistically treated
		// as directories so metadata queries on them succeed; a wrong guess
		// surfaces as an empty listing.
		return &snapDir{fs: d.fs, ts: d.ts, rel: rel}, nil
	case errors.Is(err, rewind.ErrRootNotDir):
		return nil, syscall.ENOTDIR
	default:
		d.fs.log.Warn("lookup failed", "rel", rel, "timestamp", d.ts, "error", err)
		return nil, syscall.ENOENT
	}
}

func (d *snapDir) ReadDirAll(ctx context.Context) ([]fuse.Dirent, error) {
	names, err := d.fs.tree.List(d.ts, d.rel)
	if err != nil {
		d.fs.log.Warn("readdir failed", "rel", d.rel, "timestamp", d.ts, "error", err)
		return nil, syscall.EINVAL
	}

	dirents := make([]fuse.Dirent, 0, len(names))
	for _, name := range names {
		// The kernel supplies the self and parent entries.
		if name == "." || name == ".." {
			continue
		}
		dirents = append(dirents, fuse.Dirent{
			Inode: inodeForPath(d.virtualPath() + "/" + name),
			Name:  name,
			Type:  fuse.DT_Unknown,
		})
	}
	return dirents, nil
}

// The projection is read-only; every mutating operation is rejected at
// the boundary.

func (d *snapDir) Create(ctx context.Context, req *fuse.CreateRequest, resp *fuse.CreateResponse) (fs.Node, fs.Handle, error) {
	return nil, nil, syscall.EROFS
}

func (d *snapDir) Mkdir(ctx context.Context, req *fuse.MkdirRequest) (fs.Node, error) {
	return nil, syscall.EROFS
}

func (d *snapDir) Remove(ctx context.Context, req *fuse.RemoveRequest) error {
	return syscall.EROFS
}

func (d *snapDir) Rename(ctx context.Context, req *fuse.RenameRequest, newDir fs.Node) error {
	return syscall.EROFS
}

func (d *snapDir) Symlink(ctx context.Context, req *fuse.SymlinkRequest) (fs.Node, error) {
	return nil, syscall.EROFS
}

func (d *snapDir) Link(ctx context.Context, req *fuse.LinkRequest, old fs.Node) (fs.Node, error) {
	return nil, syscall.EROFS
}

func (d *snapDir) Mknod(ctx context.Context, req *fuse.MknodRequest) (fs.Node, error) {
	return nil, syscall.EROFS
}

// file is a resolved historical file version.
type file struct {
	fs      *FS
	version rewind.Version
}

func (f *file) Attr(ctx context.Context, a *fuse.Attr) error {
	info, err := os.Lstat(f.version.Path)
	if err != nil {
		return syscall.ENOENT
	}
	a.Inode = inodeForPath(f.version.Path)
	a.Mode = info.Mode().Perm() &^ 0o222
	a.Size = uint64(info.Size())
	a.Mtime = info.ModTime()
	a.Ctime = info.ModTime()
	a.Atime = time.Now()
	return nil
}

func (f *file) Open(ctx context.Context, req *fuse.OpenRequest, resp *fuse.OpenResponse) (fs.Handle, error) {
	if !req.Flags.IsReadOnly() {
		return nil, syscall.EROFS
	}
	h, err := os.Open(f.version.Path)
	if err != nil {
		f.fs.log.Warn("open failed", "path", f.version.Path, "error", err)
		return nil, syscall.ENOENT
	}
	return &fileHandle{f: h}, nil
}

func (f *file) Setattr(ctx context.Context, req *fuse.SetattrRequest, resp *fuse.SetattrResponse) error {
	return syscall.EROFS
}

// fileHandle reads from the physical file backing a resolved version.
type fileHandle struct {
	f *os.File
}

func (h *fileHandle) Read(ctx context.Context, req *fuse.ReadRequest, resp *fuse.ReadResponse) error {
	buf := make([]byte, req.Size)
	n, err := h.f.ReadAt(buf, req.Offset)
	if err != nil && err != io.EOF {
		return err
	}
	resp.Data = buf[:n]
	return nil
}

func (h *fileHandle) Write(ctx context.Context, req *fuse.WriteRequest, resp *fuse.WriteResponse) error {
	return syscall.EROFS
}

func (h *fileHandle) Flush(ctx context.Context, req *fuse.FlushRequest) error {
	return nil
}

func (h *fileHandle) Release(ctx context.Context, req *fuse.ReleaseRequest) error {
	return h.f.Close()
}
