package analyzer

// ExampleLog is a canonical payment-service log used for demos and as a
// golden test input. It exhibits a Spring Boot layout with two recurring
// errors, one retry warning and Java stack traces.
const ExampleLog = `2024-01-15 10:30:44.989  INFO 12345 --- [main] c.e.payment.PaymentApplication : Started PaymentApplication in 3.421 seconds
2024-01-15 10:30:45.123  INFO 12345 --- [http-nio-8080-exec-1] c.e.payment.PaymentService : Processing payment request for order 8841
2024-01-15 10:30:45.234 ERROR 12345 --- [http-nio-8080-exec-1] c.e.payment.PaymentService : java.lang.NullPointerException: Customer ID cannot be null
	at com.example.payment.PaymentService.process(PaymentService.java:47)
	at com.example.payment.PaymentController.submit(PaymentController.java:31)
	at java.base/java.lang.Thread.run(Thread.java:833)
2024-01-15 10:30:46.001  INFO 12345 --- [http-nio-8080-exec-2] c.e.payment.PaymentService : Processing payment request for order 8842
2024-01-15 10:30:46.118 ERROR 12345 --- [http-nio-8080-exec-2] c.e.payment.PaymentService : java.util.concurrent.TimeoutException: Database connection timeout after 30s
	at com.example.payment.db.ConnectionPool.acquire(ConnectionPool.java:112)
	at com.example.payment.PaymentService.process(PaymentService.java:52)
2024-01-15 10:30:47.310 ERROR 12345 --- [http-nio-8080-exec-3] c.e.payment.PaymentService : java.lang.NullPointerException: Customer ID cannot be null
	at com.example.payment.PaymentService.process(PaymentService.java:47)
	at com.example.payment.PaymentController.submit(PaymentController.java:31)
2024-01-15 10:30:48.005  WARN 12345 --- [http-nio-8080-exec-4] c.e.payment.RetryPolicy : Retrying payment for order 8842, attempt 2 of 3
2024-01-15 10:30:48.441 ERROR 12345 --- [http-nio-8080-exec-4] c.e.payment.PaymentService : java.util.concurrent.TimeoutException: Database connection timeout after 30s
	at com.example.payment.db.ConnectionPool.acquire(ConnectionPool.java:112)
	at com.example.payment.PaymentService.process(PaymentService.java:52)
2024-01-15 10:30:49.120 ERROR 12345 --- [http-nio-8080-exec-5] c.e.payment.PaymentService : java.lang.NullPointerException: Customer ID cannot be null
	at com.example.payment.PaymentService.process(PaymentService.java:47)
	at com.example.payment.PaymentController.submit(PaymentController.java:31)
	at java.base/java.lang.Thread.run(Thread.java:833)
2024-01-15 10:30:50.002  INFO 12345 --- [http-nio-8080-exec-5] c.e.payment.PaymentService : Payment queue drained
`
