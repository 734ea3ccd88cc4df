package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log"
	"time"

	config "github.com/cybruGhost/keattractions-sub001/configs"
	"github.com/cybruGhost/keattractions-sub001/database"
	"github.com/cybruGhost/keattractions-sub001/models"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

// GenerateBookingReceipt renders a PDF receipt for a settled booking, uploads
// it and stores the URL on the payment row. Called asynchronously after a
// final payment; failures are logged, never surfaced to the paying customer.
func GenerateBookingReceipt(payment models.Payment, booking models.Booking, user models.User) {
	htmlData, err := generateReceiptHTML(payment, booking, user)
	if err != nil {
		log.Printf("🔥 Failed to generate receipt HTML: %v", err)
		return
	}

	pdfBytes, err := generatePDFFromHTML(htmlData)
	if err != nil {
		log.Printf("🔥 Failed to generate receipt PDF: %v", err)
		return
	}

	uploadURL, err := uploadReceiptToCloudinary(pdfBytes, payment.ID.String())
	if err != nil {
		log.Printf("🔥 Failed to upload receipt to Cloudinary: %v", err)
		return
	}

	if err := database.DB.Model(&models.Payment{}).
		Where("id = ?", payment.ID).
		Update("receipt_url", uploadURL).Error; err != nil {
		log.Printf("🔥 Failed to store receipt URL for payment %s: %v", payment.ID, err)
		return
	}

	log.Printf("✅ Generated receipt for payment %s (booking %s).", payment.ID, booking.Reference)
}

func generateReceiptHTML(payment models.Payment, booking models.Booking, user models.User) (string, error) {
	tmpl, err := template.ParseFiles("templates/receipt.html")
	if err != nil {
		return "", err
	}

	data := struct {
		CustomerName  string
		Reference     string
		BookingType   string
		Amount        string
		PaymentMethod string
		PaymentDate   string
	}{
		CustomerName:  user.FullName(),
		Reference:     booking.Reference,
		BookingType:   booking.BookingType,
		Amount:        fmt.Sprintf("%.2f", payment.Amount),
		PaymentMethod: payment.PaymentMethod,
		PaymentDate:   time.Now().Format("January 2, 2006"),
	}

	var renderedHTML bytes.Buffer
	if err := tmpl.Execute(&renderedHTML, data); err != nil {
		return "", err
	}
	return renderedHTML.String(), nil
}

func generatePDFFromHTML(htmlContent string) ([]byte, error) {
	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	var pdfBuffer []byte
	err := chromedp.Run(ctx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, htmlContent).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			pdf, _, err := page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			if err != nil {
				return err
			}
			pdfBuffer = pdf
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfBuffer, nil
}

func uploadReceiptToCloudinary(fileBytes []byte, paymentID string) (string, error) {
	cld, err := cloudinary.NewFromURL(config.Config("CLOUDINARY_URL"))
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	uploadParams := uploader.UploadParams{
		PublicID:     fmt.Sprintf("receipts/%s_%s", paymentID, uuid.New().String()),
		Folder:       "keattractions_receipts",
		ResourceType: "raw",
	}

	uploadResult, err := cld.Upload.Upload(ctx, bytes.NewReader(fileBytes), uploadParams)
	if err != nil {
		return "", err
	}

	return uploadResult.SecureURL, nil
}
