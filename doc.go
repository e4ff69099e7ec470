// Package fastdl prepares a FastDL mirror of a Source engine game-asset tree.
//
// It walks a directory, picks out the asset types clients download over
// FastDL, and writes a compressed sibling next to each one. Files that already
// have a sibling are left alone, so running it again only picks up new files.
//
// # Features
//
//   - Recursive scan that follows symlinks and skips hidden entries
//   - Fixed asset allow-list: vmt, vtf, vtx, phy, mdl, vvd, wav, mp3, bsp
//   - Existence-based idempotence (model.mdl is skipped if model.mdl.bz2 exists)
//   - Parallel compression, one worker per CPU
//   - One progress line per completed file
//   - bzip2 by default; gzip, zstd, lz4, brotli and snappy for web mirrors
//
// # Quick Start
//
//	stats, err := fastdl.Run(ctx, "/srv/fastdl/cstrike", nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(stats.FilesCompressed, "files compressed")
//
// Output looks like:
//
//	[1/3] /srv/fastdl/cstrike/maps/de_dust2.bsp
//	[3/3] /srv/fastdl/cstrike/sound/radio/go.wav
//	[2/3] /srv/fastdl/cstrike/models/player/ct_gign.mdl
//
// Completion numbers are unique but lines arrive in whatever order the
// workers finish.
//
// # Pipeline
//
// Run is Plan followed by Compressor.Run. Plan drains Walk and filters with
// Eligible, producing a WorkList whose size is fixed before any compression
// starts. Compressor.Run hands items to the worker pool; the first I/O
// error stops the run and is returned as an *ItemError.
//
// # Limitations
//
// Staleness is not tracked: an artifact is never rebuilt once it exists, even
// if the source changed. Artifacts are written in place, so an interrupted run
// can leave a truncated file that later runs will treat as done.
package fastdl
