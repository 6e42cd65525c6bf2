package main

import (
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/muxable/framebuffer/pkg/video"
	"github.com/muxable/framebuffer/pkg/y4m"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"go.uber.org/zap"
)

// convert produces a frame of the requested kind from an I420 source. The
// returned handle is owned by the caller.
func convert(frame *video.I420Handle, kind string) (video.Buffer, error) {
	switch kind {
	case "i420":
		return frame.Clone(), nil
	case "i420a":
		return video.I420AFromI420(frame), nil
	case "i422":
		return video.I422FromI420(frame), nil
	case "i444":
		return video.I444FromI420(frame), nil
	case "i010":
		return video.I010FromI420(frame), nil
	case "nv12":
		return video.NV12FromI420(frame), nil
	}
	return nil, fmt.Errorf("unknown buffer kind %q", kind)
}

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	undo := zap.ReplaceGlobals(logger)
	defer undo()

	in := flag.String("in", "-", "input y4m stream, - for stdin")
	out := flag.String("out", "-", "output y4m stream, - for stdout")
	via := flag.String("via", "i420", "intermediate buffer kind (i420, i420a, i422, i444, i010, nv12)")
	metricsAddr := flag.String("metrics", "", "serve prometheus metrics on this address")

	flag.Parse()

	if *metricsAddr != "" {
		go func() {
			m := http.NewServeMux()
			m.Handle("/metrics", promhttp.Handler())
			srv := &http.Server{Addr: *metricsAddr, Handler: m}
			if err := srv.ListenAndServe(); err != nil {
				zap.L().Error("metrics server exited", zap.Error(err))
			}
		}()
	}

	var src io.Reader = os.Stdin
	if *in != "-" {
		f, err := os.Open(*in)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to open input")
		}
		defer f.Close()
		src = f
	}

	var dst io.Writer = os.Stdout
	if *out != "-" {
		f, err := os.Create(*out)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create output")
		}
		defer f.Close()
		dst = f
	}

	r, err := y4m.NewReader(src)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to read stream header")
	}
	w := y4m.NewWriter(dst, r.Width(), r.Height())

	log.Info().Int("width", r.Width()).Int("height", r.Height()).Str("via", *via).Msg("converting")

	frames := 0
	for {
		frame, err := r.ReadFrame()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Fatal().Err(err).Int("frame", frames).Msg("failed to read frame")
		}

		converted, err := convert(frame, *via)
		if err != nil {
			log.Fatal().Err(err).Msg("conversion failed")
		}
		if err := w.WriteFrame(converted); err != nil {
			log.Fatal().Err(err).Int("frame", frames).Msg("failed to write frame")
		}
		converted.Release()
		frame.Release()

		frames++
		if frames%100 == 0 {
			log.Info().Int("frames", frames).Msg("progress")
		}
	}
	if err := w.Flush(); err != nil {
		log.Fatal().Err(err).Msg("failed to flush output")
	}

	log.Info().Int("frames", frames).Msg("done")
}
