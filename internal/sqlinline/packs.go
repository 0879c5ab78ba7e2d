package sqlinline

const QSelectActiveWeeklyPack = `--sql 26c1b1bf-c8dd-48c9-b28e-060c63df5f89
select slot_specs
from weekly_packs
where active = true
order by starts_at desc
limit 1`
