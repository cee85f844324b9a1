package seeddata

import "github.com/medora/tenant-seeder/internal/domain/entities"

var doctors = []entities.Doctor{
	{Name: "Dr. Amit Sharma", Email: "amit.sharma@hospitaltest.com", Phone: "+91 98000 12345", Specialization: "General Medicine", ConsultationFee: 500, IsActive: true},
	{Name: "Dr. Priya Patel", Email: "priya.patel@hospitaltest.com", Phone: "+91 98000 20264", Specialization: "Cardiology", ConsultationFee: 1200, IsActive: true},
	{Name: "Dr. Rajesh Kumar", Email: "rajesh.kumar@hospitaltest.com", Phone: "+91 98000 28183", Specialization: "Orthopaedics", ConsultationFee: 900, IsActive: true},
	{Name: "Dr. Sunita Reddy", Email: "sunita.reddy@hospitaltest.com", Phone: "+91 98000 36102", Specialization: "Obstetrics & Gynaecology", ConsultationFee: 800, IsActive: true},
	{Name: "Dr. Vikram Singh", Email: "vikram.singh@hospitaltest.com", Phone: "+91 98000 44021", Specialization: "Neurology", ConsultationFee: 1500, IsActive: true},
	{Name: "Dr. Anjali Mehta", Email: "anjali.mehta@hospitaltest.com", Phone: "+91 98000 51940", Specialization: "Dermatology", ConsultationFee: 700, IsActive: true},
	{Name: "Dr. Suresh Iyer", Email: "suresh.iyer@hospitaltest.com", Phone: "+91 98000 59859", Specialization: "Gastroenterology", ConsultationFee: 1100, IsActive: true},
	{Name: "Dr. Kavita Nair", Email: "kavita.nair@hospitaltest.com", Phone: "+91 98000 67778", Specialization: "Paediatrics", ConsultationFee: 600, IsActive: true},
	{Name: "Dr. Arjun Rao", Email: "arjun.rao@hospitaltest.com", Phone: "+91 98000 75697", Specialization: "ENT", ConsultationFee: 650, IsActive: true},
	{Name: "Dr. Meera Krishnan", Email: "meera.krishnan@hospitaltest.com", Phone: "+91 98000 83616", Specialization: "Ophthalmology", ConsultationFee: 700, IsActive: true},
	{Name: "Dr. Rohit Gupta", Email: "rohit.gupta@hospitaltest.com", Phone: "+91 98000 91535", Specialization: "Pulmonology", ConsultationFee: 900, IsActive: true},
	{Name: "Dr. Neha Joshi", Email: "neha.joshi@hospitaltest.com", Phone: "+91 98000 99454", Specialization: "Endocrinology", ConsultationFee: 1000, IsActive: true},
	{Name: "Dr. Sanjay Verma", Email: "sanjay.verma@hospitaltest.com", Phone: "+91 98001 07373", Specialization: "Nephrology", ConsultationFee: 1200, IsActive: true},
	{Name: "Dr. Pooja Desai", Email: "pooja.desai@hospitaltest.com", Phone: "+91 98001 15292", Specialization: "Psychiatry", ConsultationFee: 1000, IsActive: true},
	{Name: "Dr. Manoj Pillai", Email: "manoj.pillai@hospitaltest.com", Phone: "+91 98001 23211", Specialization: "Urology", ConsultationFee: 1100, IsActive: true},
	{Name: "Dr. Deepa Menon", Email: "deepa.menon@hospitaltest.com", Phone: "+91 98001 31130", Specialization: "Radiology", ConsultationFee: 800, IsActive: true},
	{Name: "Dr. Anil Kapoor", Email: "anil.kapoor@hospitaltest.com", Phone: "+91 98001 39049", Specialization: "General Surgery", ConsultationFee: 1000, IsActive: true},
	{Name: "Dr. Ritu Agarwal", Email: "ritu.agarwal@hospitaltest.com", Phone: "+91 98001 46968", Specialization: "Obstetrics & Gynaecology", ConsultationFee: 900, IsActive: true},
	{Name: "Dr. Karthik Subramanian", Email: "karthik.subramanian@hospitaltest.com", Phone: "+91 98001 54887", Specialization: "Cardiology", ConsultationFee: 1500, IsActive: true},
	{Name: "Dr. Lakshmi Venkatesh", Email: "lakshmi.venkatesh@hospitaltest.com", Phone: "+91 98001 62806", Specialization: "Dentistry", ConsultationFee: 500, IsActive: true},
	{Name: "Dr. Rahul Bose", Email: "rahul.bose@hospitaltest.com", Phone: "+91 98001 70725", Specialization: "Oncology", ConsultationFee: 1800, IsActive: true},
	{Name: "Dr. Shweta Kulkarni", Email: "shweta.kulkarni@hospitaltest.com", Phone: "+91 98001 78644", Specialization: "Dermatology", ConsultationFee: 750, IsActive: true},
	{Name: "Dr. Nitin Chawla", Email: "nitin.chawla@hospitaltest.com", Phone: "+91 98001 86563", Specialization: "Orthopaedics", ConsultationFee: 1000, IsActive: true},
	{Name: "Dr. Divya Bhat", Email: "divya.bhat@hospitaltest.com", Phone: "+91 98001 94482", Specialization: "Paediatrics", ConsultationFee: 650, IsActive: true},
	{Name: "Dr. Ashok Mishra", Email: "ashok.mishra@hospitaltest.com", Phone: "+91 98002 02401", Specialization: "General Medicine", ConsultationFee: 450, IsActive: true},
	{Name: "Dr. Farah Khan", Email: "farah.khan@hospitaltest.com", Phone: "+91 98002 10320", Specialization: "Psychiatry", ConsultationFee: 1100, IsActive: true},
	{Name: "Dr. Harish Chandra", Email: "harish.chandra@hospitaltest.com", Phone: "+91 98002 18239", Specialization: "Neurology", ConsultationFee: 1400, IsActive: true},
	{Name: "Dr. Geeta Saxena", Email: "geeta.saxena@hospitaltest.com", Phone: "+91 98002 26158", Specialization: "Rheumatology", ConsultationFee: 1000, IsActive: true},
	{Name: "Dr. Imran Qureshi", Email: "imran.qureshi@hospitaltest.com", Phone: "+91 98002 34077", Specialization: "Gastroenterology", ConsultationFee: 1200, IsActive: true},
	{Name: "Dr. Jyoti Banerjee", Email: "jyoti.banerjee@hospitaltest.com", Phone: "+91 98002 41996", Specialization: "Endocrinology", ConsultationFee: 950, IsActive: true},
	{Name: "Dr. Kiran Shetty", Email: "kiran.shetty@hospitaltest.com", Phone: "+91 98002 49915", Specialization: "Physiotherapy", ConsultationFee: 400, IsActive: true},
	{Name: "Dr. Lalit Malhotra", Email: "lalit.malhotra@hospitaltest.com", Phone: "+91 98002 57834", Specialization: "ENT", ConsultationFee: 700, IsActive: true},
	{Name: "Dr. Madhuri Dixit", Email: "madhuri.dixit@hospitaltest.com", Phone: "+91 98002 65753", Specialization: "Ophthalmology", ConsultationFee: 800, IsActive: true},
	{Name: "Dr. Naveen Reddy", Email: "naveen.reddy@hospitaltest.com", Phone: "+91 98002 73672", Specialization: "Pulmonology", ConsultationFee: 850, IsActive: true},
	{Name: "Dr. Omkar Joshi", Email: "omkar.joshi@hospitaltest.com", Phone: "+91 98002 81591", Specialization: "Anaesthesiology", ConsultationFee: 900, IsActive: true},
	{Name: "Dr. Pallavi Sinha", Email: "pallavi.sinha@hospitaltest.com", Phone: "+91 98002 89510", Specialization: "General Medicine", ConsultationFee: 500, IsActive: true},
	{Name: "Dr. Ramesh Yadav", Email: "ramesh.yadav@hospitaltest.com", Phone: "+91 98002 97429", Specialization: "Urology", ConsultationFee: 1000, IsActive: true},
	{Name: "Dr. Swati Tiwari", Email: "swati.tiwari@hospitaltest.com", Phone: "+91 98003 05348", Specialization: "Nutrition & Dietetics", ConsultationFee: 400, IsActive: true},
}
