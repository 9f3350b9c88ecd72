// Command fovdemo demonstrates foveated render-target negotiation and
// frame patching against a scripted headset.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/fatih/color"

	"github.com/gogpu/fovea"
	"github.com/gogpu/fovea/preview"
	"github.com/gogpu/fovea/sim"
)

const session = fovea.Session(1)

func main() {
	var (
		profilePath = flag.String("profile", "", "headset profile YAML (built-in reference headset if empty)")
		output      = flag.String("output", "layout.png", "output file for the layout preview")
		frames      = flag.Int("frames", 3, "frames to submit")
		tangents    = flag.Bool("foveated-tangents", true, "resolve foveated tangents (static tangents when off)")
		gaze        = flag.Bool("foveated-gaze", false, "condition focus tangents on the simulated gaze")
		scale       = flag.Float64("scale", 0.25, "preview scale")
		verbose     = flag.Bool("v", false, "log geometry diagnostics to stderr")
	)
	flag.Parse()

	if *verbose {
		fovea.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	profile, err := loadProfile(*profilePath)
	if err != nil {
		log.Fatalf("Failed to load profile: %v", err)
	}
	host, err := sim.New(profile)
	if err != nil {
		log.Fatalf("Failed to build scripted runtime: %v", err)
	}

	fv := fovea.New(host,
		fovea.WithFoveatedTangents(*tangents),
		fovea.WithFoveatedGaze(*gaze))

	heading := color.RGB(128, 168, 196).SprintfFunc()
	fmt.Println(heading("headset %q", profile.Name))
	printNegotiation(fv)
	if *gaze {
		printGaze(fv)
	}

	layer := buildLayer(fv)
	for i := 0; i < *frames; i++ {
		sub := &fovea.Submission{
			FrameNumber: int64(i + 1),
			Layers:      []fovea.Layer{layer},
		}
		if err := fv.SubmitFrame(session, sub); err != nil {
			log.Fatalf("Failed to submit frame %d: %v", i+1, err)
		}
	}

	patched := lastProjectionLayer(host)
	fmt.Println(heading("patched layout after %d frames (flags %v)", *frames, patched.Header.Flags))
	printPlacement(patched)

	img, err := preview.RenderLayer(patched, *scale)
	if err != nil {
		log.Fatalf("Failed to render preview: %v", err)
	}
	if err := preview.WritePNG(*output, img); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Layout preview saved to %s (%dx%d)\n", *output, img.Bounds().Dx(), img.Bounds().Dy())
}

func loadProfile(path string) (sim.Profile, error) {
	if path == "" {
		return sim.DefaultProfile(), nil
	}
	return sim.LoadProfile(path)
}

// printNegotiation lists the render-target sizes the decorator hands out:
// negotiated extents for the full views, host extents for the focus views.
func printNegotiation(fv *fovea.Foveator) {
	for _, view := range []fovea.ViewIndex{fovea.ViewLeftFull, fovea.ViewRightFull} {
		size, err := fv.NegotiateTextureSize(session, view)
		if err != nil {
			log.Fatalf("Failed to negotiate %v: %v", view, err)
		}
		fmt.Printf("  %-10v %s\n", view, color.CyanString("%dx%d", size.Width, size.Height))
	}
	for _, view := range []fovea.ViewIndex{fovea.ViewLeftFocus, fovea.ViewRightFocus} {
		desc, err := fv.ViewDescription(session, view)
		if err != nil {
			log.Fatalf("Failed to describe %v: %v", view, err)
		}
		fmt.Printf("  %-10v %s\n", view, color.CyanString("%dx%d", desc.Width, desc.Height))
	}
}

func printGaze(fv *fovea.Foveator) {
	g, ok := fv.Gaze(session)
	fmt.Printf("  gaze ok=%v status=%v forward={%.2f %.2f %.2f} stability=%.2f\n",
		ok, g.Status, g.Combined.Forward.X, g.Combined.Forward.Y, g.Combined.Forward.Z, g.Stability)
}

// buildLayer assembles the submission an application would hand over:
// full views placed side by side at their negotiated size, focus views
// left as 1x1 placeholders for the patcher to position.
func buildLayer(fv *fovea.Foveator) *fovea.MultiProjLayer {
	size, err := fv.NegotiateTextureSize(session, fovea.ViewLeftFull)
	if err != nil {
		log.Fatalf("Failed to negotiate full view size: %v", err)
	}

	layer := &fovea.MultiProjLayer{
		Header: fovea.LayerHeader{Type: fovea.LayerTypeMultiProj},
	}
	for _, view := range []fovea.ViewIndex{fovea.ViewLeftFull, fovea.ViewRightFull} {
		tangents, err := fv.ResolveFovTangents(session, view)
		if err != nil {
			log.Fatalf("Failed to resolve %v tangents: %v", view, err)
		}
		layer.Views = append(layer.Views, fovea.ProjectionView{
			Projection: fv.ProjectionMatrix(tangents),
			Viewport: fovea.SwapchainViewport{
				Swapchain: 1,
				X:         int32(view) * size.Width,
				Width:     size.Width,
				Height:    size.Height,
			},
		})
	}
	for i := 0; i < 2; i++ {
		layer.Views = append(layer.Views, fovea.ProjectionView{
			Viewport: fovea.SwapchainViewport{Swapchain: 2, Width: 1, Height: 1},
		})
	}
	return layer
}

func lastProjectionLayer(host *sim.Runtime) *fovea.MultiProjLayer {
	frames := host.Frames()
	if len(frames) == 0 {
		log.Fatal("No frames recorded")
	}
	for _, layer := range frames[len(frames)-1].Layers {
		if proj, ok := layer.(*fovea.MultiProjLayer); ok {
			return proj
		}
	}
	log.Fatal("No projection layer recorded")
	return nil
}

func printPlacement(layer *fovea.MultiProjLayer) {
	for k, view := range layer.Views {
		vp := view.Viewport
		fmt.Printf("  %-10v swapchain %d  %s\n", fovea.ViewIndex(k), vp.Swapchain,
			color.YellowString("{%d,%d %dx%d}", vp.X, vp.Y, vp.Width, vp.Height))
	}
}
