package sqlinline

const QInsertDonation = `--sql 4f1c9a2e-8d35-4b6a-9c01-7e52a3d8f614
insert into donations (donor_name, amount, created_at)
values ($1::text, $2::numeric, $3::timestamptz)
returning id;
`

const QCountDonations = `--sql b27e60d1-41fa-4c8b-8a9d-035c9e7b2da8
select count(*) from donations;
`

const QSumDonationAmounts = `--sql 9d84b3f7-62c0-49e5-b1aa-4c08d6f1e923
select coalesce(sum(amount), 0) from donations;
`

const QDonationsByDonor = `--sql 1a6fd8c4-97b2-4e03-a5d6-8f31c0b74e59
select id, donor_name, amount, created_at
from donations
where donor_name = $1::text
order by created_at, id;
`
