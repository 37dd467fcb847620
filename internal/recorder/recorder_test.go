package recorder

import (
	"bytes"
	"errors"
	"image/gif"

	"github.com/go-logr/logr"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func solidFrame(w, h int, r, g, b byte) []byte {
	f := make([]byte, w*h*3)
	for i := 0; i < w*h; i++ {
		f[3*i], f[3*i+1], f[3*i+2] = r, g, b
	}
	return f
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) { return 0, errors.New("disk full") }

var _ = Describe("Recorder", func() {
	var rec *Recorder

	BeforeEach(func() {
		rec = New(logr.Discard())
	})

	Context("when idle", func() {
		It("reports the default delay and no recording", func() {
			Expect(rec.IsRecording()).To(BeFalse())
			Expect(rec.State()).To(Equal(Idle))
			Expect(rec.FrameDelay()).To(Equal(DefaultFrameDelay))
		})

		It("rejects Capture", func() {
			err := rec.Capture(solidFrame(1, 1, 0, 0, 0))
			Expect(err).To(MatchError(ErrInvalidRecordingState))
		})

		It("rejects Stop", func() {
			_, err := rec.Stop()
			Expect(err).To(MatchError(ErrInvalidRecordingState))
		})

		It("rejects canvases a GIF cannot hold", func() {
			Expect(rec.Start(0, 10, 100)).To(MatchError(ErrInvalidDimensions))
			Expect(rec.Start(10, -1, 100)).To(MatchError(ErrInvalidDimensions))
			Expect(rec.Start(70000, 1, 100)).To(MatchError(ErrInvalidDimensions))
			Expect(rec.IsRecording()).To(BeFalse())
		})
	})

	Context("when recording", func() {
		BeforeEach(func() {
			Expect(rec.Start(2, 2, 33)).To(Succeed())
		})

		It("switches state and stores the delay", func() {
			Expect(rec.IsRecording()).To(BeTrue())
			Expect(rec.FrameDelay()).To(Equal(uint16(33)))
			w, h := rec.Dimensions()
			Expect(w).To(Equal(2))
			Expect(h).To(Equal(2))
		})

		It("rejects a second Start", func() {
			Expect(rec.Start(4, 4, 10)).To(MatchError(ErrInvalidRecordingState))
			Expect(rec.FrameDelay()).To(Equal(uint16(33)))
		})

		It("rejects frames one byte short", func() {
			err := rec.Capture(make([]byte, 2*2*3-1))
			Expect(err).To(MatchError(ErrDimensionMismatch))
			Expect(rec.FrameCount()).To(BeZero())
		})

		It("rejects frames one byte long", func() {
			Expect(rec.Capture(make([]byte, 2*2*3+1))).To(MatchError(ErrDimensionMismatch))
		})

		It("fails Stop with no frames and stays recording", func() {
			_, err := rec.Stop()
			Expect(err).To(MatchError(ErrEmptyCapture))
			Expect(rec.IsRecording()).To(BeTrue())
		})

		It("copies captured frames", func() {
			f := solidFrame(2, 2, 10, 20, 30)
			Expect(rec.Capture(f)).To(Succeed())
			f[0] = 99
			Expect(rec.frames[0][0]).To(Equal(byte(10)))
		})

		It("encodes frames in order with rounded delays", func() {
			Expect(rec.Capture(solidFrame(2, 2, 255, 0, 0))).To(Succeed())
			Expect(rec.Capture(solidFrame(2, 2, 0, 255, 0))).To(Succeed())
			Expect(rec.Capture(solidFrame(2, 2, 0, 0, 255))).To(Succeed())

			data, err := rec.Stop()
			Expect(err).NotTo(HaveOccurred())
			Expect(rec.IsRecording()).To(BeFalse())
			Expect(rec.FrameCount()).To(BeZero())

			anim, err := gif.DecodeAll(bytes.NewReader(data))
			Expect(err).NotTo(HaveOccurred())
			Expect(anim.Image).To(HaveLen(3))
			Expect(anim.Delay).To(Equal([]int{3, 3, 3}))
			Expect(anim.LoopCount).To(Equal(0))
			Expect(anim.Config.Width).To(Equal(2))
			Expect(anim.Config.Height).To(Equal(2))

			r, g, b, _ := anim.Image[0].At(0, 0).RGBA()
			Expect([]uint32{r >> 8, g >> 8, b >> 8}).To(Equal([]uint32{255, 0, 0}))
			r, g, b, _ = anim.Image[2].At(1, 1).RGBA()
			Expect([]uint32{r >> 8, g >> 8, b >> 8}).To(Equal([]uint32{0, 0, 255}))
		})

		It("can record again after a successful Stop", func() {
			Expect(rec.Capture(solidFrame(2, 2, 1, 2, 3))).To(Succeed())
			_, err := rec.Stop()
			Expect(err).NotTo(HaveOccurred())

			Expect(rec.Start(3, 1, 50)).To(Succeed())
			Expect(rec.FrameCount()).To(BeZero())
			Expect(rec.Capture(solidFrame(3, 1, 0, 0, 0))).To(Succeed())
		})
	})

	Describe("DelayCentiseconds", func() {
		DescribeTable("rounds half up",
			func(ms uint16, want int) {
				Expect(DelayCentiseconds(ms)).To(Equal(want))
			},
			Entry("zero", uint16(0), 0),
			Entry("below half", uint16(4), 0),
			Entry("half", uint16(5), 1),
			Entry("33ms", uint16(33), 3),
			Entry("35ms", uint16(35), 4),
			Entry("100ms", uint16(100), 10),
			Entry("max", uint16(65535), 6554),
		)
	})

	Describe("encode", func() {
		It("surfaces writer failures as encoding failures", func() {
			err := encode(failingWriter{}, 1, 1, 10, [][]byte{solidFrame(1, 1, 0, 0, 0)})
			Expect(err).To(MatchError(ErrEncodingFailure))

			var encErr *EncodeError
			Expect(errors.As(err, &encErr)).To(BeTrue())
			Expect(encErr.Frames).To(Equal(1))
		})

		It("dithers frames with more than 256 colors", func() {
			w, h := 32, 32
			f := make([]byte, w*h*3)
			for i := 0; i < w*h; i++ {
				f[3*i] = byte(i)
				f[3*i+1] = byte(i >> 2)
				f[3*i+2] = byte(i >> 4)
			}
			p := toPaletted(f, w, h)
			Expect(p.Bounds().Dx()).To(Equal(w))
			Expect(len(p.Palette)).To(Equal(256))

			var buf bytes.Buffer
			Expect(encode(&buf, w, h, 5, [][]byte{f})).To(Succeed())
			Expect(buf.Len()).To(BeNumerically(">", 0))
		})
	})
})
