package main

import (
	"log"

	"github.com/nivaro/account_service/config"
	"github.com/nivaro/account_service/infra/queue"
	"github.com/nivaro/account_service/internal/mailer"
)

func main() {
	cfg := config.LoadConfig()

	log.Println("Mailer starting...")
	log.Printf("KafkaBroker=%s Topic=%s GroupID=%s\n",
		cfg.KafkaBroker,
		cfg.KafkaTopic,
		cfg.KafkaGroupID,
	)

	mailService := mailer.NewMailService(
		cfg.SMTPHost,
		cfg.SMTPPort,
		cfg.SMTPUser,
		cfg.SMTPPassword,
		cfg.MailFrom,
		cfg.MailFromName,
		cfg.TemplatesDir,
	)

	handler := mailer.NewMailHandler(mailService)

	consumer := queue.NewKafkaConsumer(
		cfg.KafkaBroker,
		cfg.KafkaTopic,
		cfg.KafkaGroupID,
		cfg.KafkaUsername,
		cfg.KafkaPassword,
		handler,
	)

	log.Println("Mailer listening for events...")
	consumer.Listen()
}
