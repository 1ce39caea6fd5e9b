//go:build windows

package spooler

import (
	"context"
	"fmt"
	"image"
	"strconv"
	"unsafe"

	"github.com/disintegration/imaging"
	"github.com/jinford/printq/pkg/document"
	"github.com/jinford/printq/pkg/models"
	"golang.org/x/sys/windows"
)

var (
	modWinspool = windows.NewLazySystemDLL("winspool.drv")
	modGdi32    = windows.NewLazySystemDLL("gdi32.dll")

	procGetDefaultPrinterW = modWinspool.NewProc("GetDefaultPrinterW")
	procEnumPrintersW      = modWinspool.NewProc("EnumPrintersW")

	procCreateDCW     = modGdi32.NewProc("CreateDCW")
	procDeleteDC      = modGdi32.NewProc("DeleteDC")
	procGetDeviceCaps = modGdi32.NewProc("GetDeviceCaps")
	procStartDocW     = modGdi32.NewProc("StartDocW")
	procEndDoc        = modGdi32.NewProc("EndDoc")
	procAbortDoc      = modGdi32.NewProc("AbortDoc")
	procStartPage     = modGdi32.NewProc("StartPage")
	procEndPage       = modGdi32.NewProc("EndPage")
	procStretchDIBits = modGdi32.NewProc("StretchDIBits")
)

// wingdi.h / winspool.h の定数
const (
	physicalWidth  = 110 // GetDeviceCaps: 用紙の物理幅
	physicalHeight = 111 // GetDeviceCaps: 用紙の物理高さ

	printerEnumLocal       = 0x00000002
	printerEnumConnections = 0x00000004

	dibRGBColors = 0
	srcCopy      = 0x00CC0020
	biRGB        = 0

	gdiError = 0xFFFFFFFF
)

// printerInfo4 は PRINTER_INFO_4W に対応します
type printerInfo4 struct {
	PrinterName *uint16
	ServerName  *uint16
	Attributes  uint32
}

// docInfo は DOCINFOW に対応します
type docInfo struct {
	Size     int32
	DocName  *uint16
	Output   *uint16
	Datatype *uint16
	Type     uint32
}

// bitmapInfoHeader は BITMAPINFOHEADER に対応します
type bitmapInfoHeader struct {
	Size          uint32
	Width         int32
	Height        int32
	Planes        uint16
	BitCount      uint16
	Compression   uint32
	SizeImage     uint32
	XPelsPerMeter int32
	YPelsPerMeter int32
	ClrUsed       uint32
	ClrImportant  uint32
}

// winSpooler は1台のプリンタへの接続を保持します
// ModeDevice の場合はデバイスコンテキストを開いたまま保持し、
// Close で解放します
type winSpooler struct {
	name        string
	mode        Mode
	hdc         uintptr
	paperWidth  int
	paperHeight int
}

// New は指定プリンタ（空の場合はデフォルトプリンタ）への接続を開きます
func New(name string, mode Mode) (Spooler, error) {
	if name == "" {
		def, err := DefaultName()
		if err != nil {
			return nil, err
		}
		name = def
	}

	s := &winSpooler{name: name, mode: mode}

	if mode == ModeDevice {
		if err := s.openDC(); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// openDC はプリンタのデバイスコンテキストを作成し、用紙サイズを取得します
func (s *winSpooler) openDC() error {
	driver, err := windows.UTF16PtrFromString("WINSPOOL")
	if err != nil {
		return err
	}
	device, err := windows.UTF16PtrFromString(s.name)
	if err != nil {
		return err
	}

	hdc, _, callErr := procCreateDCW.Call(
		uintptr(unsafe.Pointer(driver)),
		uintptr(unsafe.Pointer(device)),
		0,
		0,
	)
	if hdc == 0 {
		return fmt.Errorf("%w: %s (%v)", ErrNoPrinter, s.name, callErr)
	}

	s.hdc = hdc
	s.paperWidth = s.deviceCaps(physicalWidth)
	s.paperHeight = s.deviceCaps(physicalHeight)
	return nil
}

func (s *winSpooler) deviceCaps(index int) int {
	ret, _, _ := procGetDeviceCaps.Call(s.hdc, uintptr(index))
	return int(ret)
}

// Name は接続先プリンタ名を返します
func (s *winSpooler) Name() string {
	return s.name
}

// Close はデバイスコンテキストを解放します
func (s *winSpooler) Close() error {
	if s.hdc != 0 {
		procDeleteDC.Call(s.hdc)
		s.hdc = 0
	}
	return nil
}

// Submit はドキュメントを印刷キューへ投入します
// ModeDevice でもPDFはラスタライズできないため、print動詞に委譲します
func (s *winSpooler) Submit(ctx context.Context, doc *document.Document) (models.JobID, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if s.mode == ModeDevice && doc.Kind == document.KindImage {
		return s.deviceSubmit(doc)
	}
	return s.shellSubmit(doc)
}

// shellSubmit はOSのprint動詞でファイルを開き、登録アプリケーションに
// 印刷させます。ShellExecuteの成功はジョブ受け付けを意味するだけなので、
// 相関ID（UUID）を発行して返します
func (s *winSpooler) shellSubmit(doc *document.Document) (models.JobID, error) {
	verb, err := windows.UTF16PtrFromString("print")
	if err != nil {
		return "", err
	}
	path, err := windows.UTF16PtrFromString(doc.Path)
	if err != nil {
		return "", fmt.Errorf("パスの変換に失敗 (%s): %w", doc.Path, err)
	}

	if err := windows.ShellExecute(0, verb, path, nil, nil, windows.SW_HIDE); err != nil {
		return "", fmt.Errorf("印刷ジョブの投入に失敗 (%s): %w", doc.Name, err)
	}

	return models.NewJobID(), nil
}

// deviceSubmit は画像をデバイスコンテキストへ直接描画して印刷します
// サイレントで、ユーザー操作を必要としません
func (s *winSpooler) deviceSubmit(doc *document.Document) (models.JobID, error) {
	img, err := document.LoadNormalized(doc.Path)
	if err != nil {
		return "", err
	}

	docName, err := windows.UTF16PtrFromString(doc.Name)
	if err != nil {
		return "", fmt.Errorf("ドキュメント名の変換に失敗 (%s): %w", doc.Name, err)
	}

	di := docInfo{DocName: docName}
	di.Size = int32(unsafe.Sizeof(di))

	jobID, _, callErr := procStartDocW.Call(s.hdc, uintptr(unsafe.Pointer(&di)))
	if int32(jobID) <= 0 {
		return "", fmt.Errorf("印刷ジョブの開始に失敗 (%s): %v", doc.Name, callErr)
	}

	if err := s.printPage(img); err != nil {
		procAbortDoc.Call(s.hdc)
		return "", fmt.Errorf("ページの描画に失敗 (%s): %w", doc.Name, err)
	}

	if ret, _, callErr := procEndDoc.Call(s.hdc); int32(ret) <= 0 {
		return "", fmt.Errorf("印刷ジョブの終了に失敗 (%s): %v", doc.Name, callErr)
	}

	return models.JobID(strconv.Itoa(int(int32(jobID)))), nil
}

// printPage は1ページ分の描画を行います
func (s *winSpooler) printPage(img image.Image) error {
	if ret, _, callErr := procStartPage.Call(s.hdc); int32(ret) <= 0 {
		return fmt.Errorf("StartPage: %v", callErr)
	}

	if err := s.drawImage(img); err != nil {
		return err
	}

	if ret, _, callErr := procEndPage.Call(s.hdc); int32(ret) <= 0 {
		return fmt.Errorf("EndPage: %v", callErr)
	}
	return nil
}

// drawImage は画像を用紙中央に最大サイズで配置して描画します
func (s *winSpooler) drawImage(img image.Image) error {
	nrgba := imaging.Clone(img)
	bounds := nrgba.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width == 0 || height == 0 {
		return fmt.Errorf("空の画像は描画できません")
	}

	// 32bit BGRA のトップダウンDIBへ変換
	bits := make([]byte, width*height*4)
	for y := 0; y < height; y++ {
		src := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+width*4]
		dst := bits[y*width*4:]
		for x := 0; x < width; x++ {
			dst[x*4+0] = src[x*4+2] // B
			dst[x*4+1] = src[x*4+1] // G
			dst[x*4+2] = src[x*4+0] // R
			dst[x*4+3] = src[x*4+3]
		}
	}

	hdr := bitmapInfoHeader{
		Width:       int32(width),
		Height:      -int32(height), // 負値でトップダウン
		Planes:      1,
		BitCount:    32,
		Compression: biRGB,
	}
	hdr.Size = uint32(unsafe.Sizeof(hdr))

	x1, y1, x2, y2 := document.FitRect(s.paperWidth, s.paperHeight, width, height)

	ret, _, callErr := procStretchDIBits.Call(
		s.hdc,
		uintptr(x1), uintptr(y1),
		uintptr(x2-x1), uintptr(y2-y1),
		0, 0,
		uintptr(width), uintptr(height),
		uintptr(unsafe.Pointer(&bits[0])),
		uintptr(unsafe.Pointer(&hdr)),
		dibRGBColors,
		srcCopy,
	)
	if ret == 0 || uint32(ret) == gdiError {
		return fmt.Errorf("StretchDIBits: %v", callErr)
	}
	return nil
}

// DefaultName はデフォルトプリンタ名を返します
func DefaultName() (string, error) {
	var size uint32
	procGetDefaultPrinterW.Call(0, uintptr(unsafe.Pointer(&size)))
	if size == 0 {
		return "", fmt.Errorf("%w: デフォルトプリンタが設定されていません", ErrNoPrinter)
	}

	buf := make([]uint16, size)
	ret, _, callErr := procGetDefaultPrinterW.Call(
		uintptr(unsafe.Pointer(&buf[0])),
		uintptr(unsafe.Pointer(&size)),
	)
	if ret == 0 {
		return "", fmt.Errorf("%w: %v", ErrNoPrinter, callErr)
	}

	return windows.UTF16ToString(buf), nil
}

// List はローカルと接続済みのプリンタを列挙します
func List() ([]models.PrinterInfo, error) {
	const flags = printerEnumLocal | printerEnumConnections

	var needed, count uint32
	procEnumPrintersW.Call(flags, 0, 4, 0, 0, uintptr(unsafe.Pointer(&needed)), uintptr(unsafe.Pointer(&count)))
	if needed == 0 {
		return nil, nil
	}

	buf := make([]byte, needed)
	ret, _, callErr := procEnumPrintersW.Call(
		flags,
		0,
		4,
		uintptr(unsafe.Pointer(&buf[0])),
		uintptr(needed),
		uintptr(unsafe.Pointer(&needed)),
		uintptr(unsafe.Pointer(&count)),
	)
	if ret == 0 {
		return nil, fmt.Errorf("プリンタの列挙に失敗: %v", callErr)
	}

	// デフォルトプリンタはマークだけ付けたいので、取れなくてもエラーにしない
	defaultName, _ := DefaultName()

	infos := make([]models.PrinterInfo, 0, count)
	entries := unsafe.Slice((*printerInfo4)(unsafe.Pointer(&buf[0])), count)
	for i := range entries {
		name := windows.UTF16PtrToString(entries[i].PrinterName)
		infos = append(infos, models.PrinterInfo{
			Name:      name,
			IsDefault: name == defaultName,
		})
	}

	return infos, nil
}
